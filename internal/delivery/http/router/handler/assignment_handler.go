package handler

import (
	"log/slog"
	"net/http"
	"time"

	"homeroom/internal/delivery/http/middleware"
	"homeroom/internal/delivery/http/response"
	"homeroom/internal/domain/entity"
	"homeroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssignmentHandler holds dependencies for assignment-related handlers.
type AssignmentHandler struct {
	uc     usecase.AssignmentUsecase
	logger *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler, injected by Fx.
func NewAssignmentHandler(uc usecase.AssignmentUsecase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, logger: logger}
}

type createAssignmentRequest struct {
	StudentID    string     `json:"studentId" validate:"required,uuid"`
	Title        string     `json:"title" validate:"required"`
	Instructions string     `json:"instructions"`
	DueAt        *time.Time `json:"dueAt"`
}

// Create handles a tutor creating an assignment.
func (h *AssignmentHandler) Create(c echo.Context) error {
	var req createAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid student id")
	}

	assignment, err := h.uc.CreateAssignment(c.Request().Context(), middleware.CurrentUser(c), &usecase.CreateAssignmentInput{
		StudentID:    studentID,
		Title:        req.Title,
		Instructions: req.Instructions,
		DueAt:        req.DueAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAssignmentView(assignment), "Assignment created")
}

// List returns the assignments visible to the caller.
func (h *AssignmentHandler) List(c echo.Context) error {
	assignments, err := h.uc.ListAssignments(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*assignmentView, 0, len(assignments))
	for _, assignment := range assignments {
		views = append(views, newAssignmentView(assignment))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get returns one assignment by id.
func (h *AssignmentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assignment id")
	}

	assignment, err := h.uc.GetAssignment(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAssignmentView(assignment), "")
}

// Submit handles a student handing in an assignment.
func (h *AssignmentHandler) Submit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assignment id")
	}

	assignment, err := h.uc.SubmitAssignment(c.Request().Context(), middleware.CurrentUser(c), &usecase.SubmitAssignmentInput{
		AssignmentID: id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAssignmentView(assignment), "Assignment submitted")
}

type gradeAssignmentRequest struct {
	Grade string `json:"grade" validate:"required"`
}

// Grade handles a tutor grading a submission.
func (h *AssignmentHandler) Grade(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assignment id")
	}

	var req gradeAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grade input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assignment, err := h.uc.GradeAssignment(c.Request().Context(), middleware.CurrentUser(c), &usecase.GradeAssignmentInput{
		AssignmentID: id,
		Grade:        req.Grade,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAssignmentView(assignment), "Assignment graded")
}

type assignmentView struct {
	ID           string     `json:"id"`
	TutorID      string     `json:"tutorId"`
	StudentID    string     `json:"studentId"`
	Title        string     `json:"title"`
	Instructions string     `json:"instructions,omitempty"`
	DueAt        *time.Time `json:"dueAt,omitempty"`
	Status       string     `json:"status"`
	Grade        string     `json:"grade,omitempty"`
	SubmittedAt  *time.Time `json:"submittedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func newAssignmentView(assignment *entity.Assignment) *assignmentView {
	return &assignmentView{
		ID:           assignment.ID.String(),
		TutorID:      assignment.TutorID.String(),
		StudentID:    assignment.StudentID.String(),
		Title:        assignment.Title,
		Instructions: assignment.Instructions,
		DueAt:        assignment.DueAt,
		Status:       string(assignment.Status),
		Grade:        assignment.Grade,
		SubmittedAt:  assignment.SubmittedAt,
		CreatedAt:    assignment.CreatedAt,
	}
}
