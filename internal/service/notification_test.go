package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/service"
	mocks "github.com/SergeyBogomolovv/garden-shop/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_Deliver(t *testing.T) {
	type MockBehavior func(users *mocks.MockUserRepo, renderer *mocks.MockEmailRenderer, mailer *mocks.MockMailer)

	user := entities.User{ID: 7, Email: "gardener@example.com"}
	smtpError := errors.New("smtp: 421 try again")

	testCases := []struct {
		name         string
		kind         entities.NotificationKind
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			kind: entities.NotificationOrderConfirmation,
			mockBehavior: func(users *mocks.MockUserRepo, renderer *mocks.MockEmailRenderer, mailer *mocks.MockMailer) {
				users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil).Once()
				renderer.EXPECT().Render(entities.NotificationOrderConfirmation, user, mock.Anything).Return("subject", "<p>body</p>", nil).Once()
				mailer.EXPECT().Send(mock.Anything, "gardener@example.com", "subject", "<p>body</p>").Return(nil).Once()
			},
		},
		{
			name: "send retried once",
			kind: entities.NotificationStatusUpdate,
			mockBehavior: func(users *mocks.MockUserRepo, renderer *mocks.MockEmailRenderer, mailer *mocks.MockMailer) {
				users.EXPECT().GetByID(mock.Anything, int64(7)).Return(user, nil).Once()
				renderer.EXPECT().Render(entities.NotificationStatusUpdate, user, mock.Anything).Return("subject", "body", nil).Once()
				mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(smtpError).Once()
				mailer.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "unknown recipient",
			kind: entities.NotificationOrderConfirmation,
			mockBehavior: func(users *mocks.MockUserRepo, _ *mocks.MockEmailRenderer, _ *mocks.MockMailer) {
				users.EXPECT().GetByID(mock.Anything, int64(7)).Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantErr: entities.ErrUserNotFound,
		},
		{
			name:         "unknown kind",
			kind:         entities.NotificationKind("invoice"),
			mockBehavior: func(*mocks.MockUserRepo, *mocks.MockEmailRenderer, *mocks.MockMailer) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserRepo(t)
			renderer := mocks.NewMockEmailRenderer(t)
			mailer := mocks.NewMockMailer(t)
			tc.mockBehavior(users, renderer, mailer)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewNotificationService(logger, users, renderer, mailer)

			err := svc.Deliver(context.Background(), tc.kind, 7, placedOrder())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
