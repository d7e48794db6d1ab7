package handlers

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
)

// newTestAPI creates a test API with the production error format and no
// $schema links in response bodies
func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	InstallErrorFormat()

	config := huma.DefaultConfig("Test API", "1.0.0")
	config.CreateHooks = nil
	_, api := humatest.New(t, config)
	return api
}
