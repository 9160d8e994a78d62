package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeCertifications(t *testing.T) {
	assert.Equal(t, "GOTS, SA8000", mergeCertifications("GOTS", "SA8000"))
	assert.Equal(t, "GOTS", mergeCertifications("GOTS", ""))
	assert.Equal(t, "SA8000", mergeCertifications("", "SA8000"))
	assert.Equal(t, "", mergeCertifications("", ""))
	assert.Equal(t, "GOTS, SA8000", mergeCertifications(" GOTS ", " SA8000 "))
}
