package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// bindStrict decodes the request body rejecting unknown fields, so a PATCH
// cannot inject arbitrary attributes into the stored document.
func bindStrict(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
