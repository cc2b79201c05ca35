package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turma62/fundraiser/internal/utils"
)

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3nha-forte")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("s3nha-forte", hash))
	assert.False(t, utils.CheckPasswordHash("outra", hash))
	assert.False(t, utils.CheckPasswordHash("", hash))
	assert.False(t, utils.CheckPasswordHash("s3nha-forte", ""))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := utils.HashPassword("")
	assert.ErrorIs(t, err, utils.ErrEmptyPassword)
}
