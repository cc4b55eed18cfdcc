package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)
	require.NotNil(t, doc)

	root := doc.Paths.Find("/")
	require.NotNil(t, root)
	require.NotNil(t, root.Get)
	require.NotNil(t, root.Post)
	assert.Equal(t, "ListServers", root.Get.OperationID)
	assert.Equal(t, "Announce", root.Post.OperationID)

	for _, name := range []string{"name", "port", "active"} {
		p := root.Post.Parameters.GetByInAndName("query", name)
		require.NotNil(t, p, name)
		assert.True(t, p.Required, name)
	}

	health := doc.Paths.Find("/healthz")
	require.NotNil(t, health)
	assert.NotNil(t, health.GetOperation(http.MethodGet))
}
