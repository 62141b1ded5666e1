package footballdata

import "context"

const areasPath = "/areas"

// GetArea fetches a single area by id, or every area when id is empty.
func (c *Client) GetArea(ctx context.Context, id string) (any, error) {
	if id != "" {
		return c.Get(ctx, areasPath+"/"+id)
	}
	return c.Get(ctx, areasPath)
}
