// internal/testutil/http.go
package testutil

import (
	"net/http"

	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser returns a SessionUser with the admin role.
func AdminUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  "admin",
	}
}

// EditorUser returns a SessionUser with the editor role.
func EditorUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Editor",
		Email: "editor@test.com",
		Role:  "editor",
	}
}

// AsUser injects the given user into the request context, simulating
// an authenticated session.
func AsUser(r *http.Request, u *auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, u)
}
