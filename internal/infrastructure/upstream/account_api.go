package upstream

import (
	"context"
	"net/http"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// UpdateProfile PUTs profile fields via PUT /accounts/profile/:slug/.
func (c *Client) UpdateProfile(ctx context.Context, access string, update domain.ProfileUpdate) error {
	body := map[string]domain.ProfileUpdate{"data": update}
	return c.do(ctx, http.MethodPut, "/accounts/profile/"+update.Slug+"/", "profile_update", access, body, nil)
}
