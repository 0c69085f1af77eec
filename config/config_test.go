package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminEmailList(t *testing.T) {
	original := AppConfig.AdminEmails
	defer func() { AppConfig.AdminEmails = original }()

	AppConfig.AdminEmails = "admin@darsehha.com, ops@darsehha.com ,,"
	assert.Equal(t, []string{"admin@darsehha.com", "ops@darsehha.com"}, AdminEmailList())

	AppConfig.AdminEmails = ""
	assert.Empty(t, AdminEmailList())
}

func TestIsAdminEmail(t *testing.T) {
	original := AppConfig.AdminEmails
	defer func() { AppConfig.AdminEmails = original }()

	AppConfig.AdminEmails = "admin@darsehha.com"
	assert.True(t, IsAdminEmail("admin@darsehha.com"))
	assert.True(t, IsAdminEmail("ADMIN@darsehha.com"))
	assert.False(t, IsAdminEmail("patient@example.com"))
	assert.False(t, IsAdminEmail(""))
}
