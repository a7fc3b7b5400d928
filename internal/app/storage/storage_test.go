package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "img/abc.png", ObjectName("abc.png"))
}

func TestMinioStoreImplementsImageStore(t *testing.T) {
	var _ ImageStore = (*MinioStore)(nil)
}
