package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Role
		valid bool
	}{
		{input: "tutor", want: RoleTutor, valid: true},
		{input: "parent", want: RoleParent, valid: true},
		{input: "student", want: RoleStudent, valid: true},
		{input: "admin", valid: false},
		{input: "Tutor", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			role, ok := ParseRole(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, role)
			}
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleTutor.IsValid())
	assert.True(t, RoleParent.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.False(t, Role("owner").IsValid())
}
