package aws

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetS3Client(t *testing.T) {
	client, err := GetS3Client()
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestGetS3ClientConfigInvalida(t *testing.T) {
	os.Setenv("AWS_ENABLE_ENDPOINT_DISCOVERY", "maybe")
	defer os.Unsetenv("AWS_ENABLE_ENDPOINT_DISCOVERY")

	client, err := GetS3Client()
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestS3UploadAssetArchivoInexistente(t *testing.T) {
	url, err := S3UploadAsset("planes/nada.jpeg", "/no/existe/nada.jpeg")
	assert.Error(t, err)
	assert.Nil(t, url)
}
