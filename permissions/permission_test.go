package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantFound bool
		want      Permission
	}{
		{
			name:      "public site route is skipped",
			path:      "/v1/site/inquiries",
			method:    http.MethodPost,
			wantFound: true,
			want:      Permission{Path: "/v1/site/inquiries", Method: http.MethodPost, Skip: true},
		},
		{
			name:      "gallery delete needs gallery delete",
			path:      "/v1/galleries/{id}",
			method:    http.MethodDelete,
			wantFound: true,
			want:      Permission{Path: "/v1/galleries/{id}", Method: http.MethodDelete, Resource: "gallery", Action: "delete"},
		},
		{
			name:      "creating admins is restricted to super admins",
			path:      "/v1/admins/",
			method:    http.MethodPost,
			wantFound: true,
			want: Permission{
				Path:     "/v1/admins/",
				Method:   http.MethodPost,
				Resource: "users",
				Action:   "create",
				Roles:    []string{"super_admin"},
			},
		},
		{
			name:      "group root without trailing slash",
			path:      "/v1/site",
			method:    http.MethodGet,
			wantFound: true,
			want:      Permission{Path: "/v1/site/", Method: http.MethodGet, Skip: true},
		},
		{
			name:      "list route without trailing slash",
			path:      "/v1/galleries",
			method:    http.MethodGet,
			wantFound: true,
			want:      Permission{Path: "/v1/galleries/", Method: http.MethodGet, Resource: "gallery", Action: "view"},
		},
		{
			name:      "unknown route",
			path:      "/v1/unknown",
			method:    http.MethodGet,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermission_RoleAllowed(t *testing.T) {
	open := Permission{}
	restricted := Permission{Roles: []string{"super_admin"}}

	assert.True(t, open.RoleAllowed("viewer"))
	assert.True(t, restricted.RoleAllowed("super_admin"))
	assert.False(t, restricted.RoleAllowed("admin"))
}
