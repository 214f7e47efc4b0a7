// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/skill-roller/internal/repositories/session/mock"
)

// ExpectSessionGet sets up a Get returning a copy of s, or err when s is nil
func ExpectSessionGet(ctx context.Context, mockRepo *sessionmock.MockRepository, id string, s *sheet.Session, err error) *gomock.Call {
	call := mockRepo.EXPECT().Get(ctx, sessionrepo.GetInput{ID: id})
	if s == nil {
		return call.Return(nil, err)
	}
	return call.Return(&sessionrepo.GetOutput{Session: s.Clone()}, nil)
}

// ExpectSessionUpdate captures the snapshot written by Update into *saved
func ExpectSessionUpdate(ctx context.Context, mockRepo *sessionmock.MockRepository, saved **sheet.Session) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.UpdateInput) (*sessionrepo.UpdateOutput, error) {
			if saved != nil {
				*saved = input.Session.Clone()
			}
			return &sessionrepo.UpdateOutput{Session: input.Session}, nil
		})
}
