package postgres

import (
	"homeroom/internal/domain/entity"
	"homeroom/internal/infra/persistence/model"
)

// Mapping between persistence models and pure domain entities. Repositories
// never leak GORM models across the repository boundary.

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:                       m.ID,
		Email:                    m.Email,
		Name:                     m.Name,
		PhotoURL:                 m.PhotoURL,
		PasswordHash:             m.PasswordHash,
		EmailVerified:            m.EmailVerified,
		ParentID:                 m.ParentID,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
		VerificationTokenExpiry:  m.VerificationTokenExpiry,
		PasswordResetTokenExpiry: m.PasswordResetTokenExpiry,
	}

	if m.Role != nil {
		role := entity.Role(*m.Role)
		user.Role = &role
	}
	if m.FederatedUID != nil {
		user.FederatedUID = *m.FederatedUID
	}
	if m.VerificationToken != nil {
		user.VerificationToken = *m.VerificationToken
	}
	if m.PasswordResetToken != nil {
		user.PasswordResetToken = *m.PasswordResetToken
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	m := &model.UserModel{
		ID:                       user.ID,
		Email:                    user.Email,
		Name:                     user.Name,
		PhotoURL:                 user.PhotoURL,
		PasswordHash:             user.PasswordHash,
		EmailVerified:            user.EmailVerified,
		ParentID:                 user.ParentID,
		CreatedAt:                user.CreatedAt,
		UpdatedAt:                user.UpdatedAt,
		VerificationTokenExpiry:  user.VerificationTokenExpiry,
		PasswordResetTokenExpiry: user.PasswordResetTokenExpiry,
	}

	if user.Role != nil {
		role := user.Role.String()
		m.Role = &role
	}
	if user.FederatedUID != "" {
		uid := user.FederatedUID
		m.FederatedUID = &uid
	}
	if user.VerificationToken != "" {
		token := user.VerificationToken
		m.VerificationToken = &token
	}
	if user.PasswordResetToken != "" {
		token := user.PasswordResetToken
		m.PasswordResetToken = &token
	}

	return m
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	session := &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		Mechanism: entity.SessionMechanism(m.Mechanism),
		CreatedAt: m.CreatedAt,
	}

	if m.FederatedUID != nil {
		session.FederatedUID = *m.FederatedUID
	}
	if m.FederatedEmail != nil {
		session.FederatedEmail = *m.FederatedEmail
	}

	return session
}

func fromSessionDomain(session *entity.Session) *model.SessionModel {
	m := &model.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		TokenHash: session.TokenHash,
		Mechanism: string(session.Mechanism),
		CreatedAt: session.CreatedAt,
	}

	if session.FederatedUID != "" {
		uid := session.FederatedUID
		m.FederatedUID = &uid
	}
	if session.FederatedEmail != "" {
		email := session.FederatedEmail
		m.FederatedEmail = &email
	}

	return m
}

func toAssignmentDomain(m *model.AssignmentModel) *entity.Assignment {
	return &entity.Assignment{
		ID:           m.ID,
		TutorID:      m.TutorID,
		StudentID:    m.StudentID,
		Title:        m.Title,
		Instructions: m.Instructions,
		DueAt:        m.DueAt,
		Status:       entity.AssignmentStatus(m.Status),
		Grade:        m.Grade,
		SubmittedAt:  m.SubmittedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromAssignmentDomain(assignment *entity.Assignment) *model.AssignmentModel {
	return &model.AssignmentModel{
		ID:           assignment.ID,
		TutorID:      assignment.TutorID,
		StudentID:    assignment.StudentID,
		Title:        assignment.Title,
		Instructions: assignment.Instructions,
		DueAt:        assignment.DueAt,
		Status:       string(assignment.Status),
		Grade:        assignment.Grade,
		SubmittedAt:  assignment.SubmittedAt,
		CreatedAt:    assignment.CreatedAt,
		UpdatedAt:    assignment.UpdatedAt,
	}
}

func toMessageDomain(m *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}

func fromMessageDomain(message *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Body:        message.Body,
		ReadAt:      message.ReadAt,
		CreatedAt:   message.CreatedAt,
	}
}
