package mapping

import (
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash.String,
		AuditFields:  domain.AuditFields{CreatedAt: m.CreatedAt},
	}
}

// ToDomainAdminUser converts a model AdminUser to a domain AdminUser
func ToDomainAdminUser(m models.AdminUser) domain.AdminUser {
	return domain.AdminUser{
		UserID:    m.UserID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
