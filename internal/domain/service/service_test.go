package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("svc_test00000001", "Account Opening", "A", "New accounts and cards", 300)
	require.NoError(t, err)
	return svc
}

func TestNewService_ValidInput(t *testing.T) {
	svc, err := NewService("svc_test00000001", "  Account Opening ", "a", " desk 1 ", 300)

	require.NoError(t, err)
	assert.Equal(t, "Account Opening", svc.Name())
	assert.Equal(t, "A", svc.Code(), "code is upper-cased")
	assert.Equal(t, "desk 1", svc.Description())
	assert.Equal(t, uint(300), svc.AvgHandleSeconds())
	assert.True(t, svc.IsActive())
	assert.Equal(t, 1, svc.Version())
}

func TestNewService_InvalidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "empty", code: ""},
		{name: "too long", code: "FRONT"},
		{name: "punctuation", code: "A-1"},
		{name: "whitespace only", code: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewService("svc_test00000001", "Teller", tt.code, "", 0)
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}

func TestNewService_MissingName(t *testing.T) {
	svc, err := NewService("svc_test00000001", "   ", "A", "", 0)

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Update("Priority Desk", "VIP customers"))

	assert.Equal(t, "Priority Desk", svc.Name())
	assert.Equal(t, "VIP customers", svc.Description())
	assert.Equal(t, 2, svc.Version())
}

func TestService_Update_EmptyName(t *testing.T) {
	svc := newTestService(t)

	assert.Error(t, svc.Update("", "x"))
	assert.Equal(t, "Account Opening", svc.Name())
}

func TestService_ActivateDeactivate(t *testing.T) {
	svc := newTestService(t)

	svc.Deactivate()
	assert.False(t, svc.IsActive())

	svc.Deactivate()
	assert.Equal(t, 2, svc.Version(), "repeated deactivate must not bump version")

	svc.Activate()
	assert.True(t, svc.IsActive())
}

func TestService_FormatLabel(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "A-007", svc.FormatLabel(7))
	assert.Equal(t, "A-042", svc.FormatLabel(42))
	assert.Equal(t, "A-1042", svc.FormatLabel(1042), "wide numbers keep all digits")
}
