package bootstrap

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-lab/portfolio-backend/config"
)

func TestOpenRedis(t *testing.T) {
	client, err := OpenRedis(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err = OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	_, err = OpenRedis(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestOpenFirestore_Disabled(t *testing.T) {
	client, err := OpenFirestore(context.Background(), config.FirebaseConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}
