package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockSuiClientForTest creates a new mock SuiClientInterface for testing
func NewMockSuiClientForTest(t *testing.T) *MockSuiClientInterface {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSuiClientInterface(ctrl)
}

// NewMockSignerForTest creates a new mock Signer for testing
func NewMockSignerForTest(t *testing.T) *MockSigner {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSigner(ctrl)
}
