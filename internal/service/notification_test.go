package service

import (
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/domain/notification"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service NotificationService
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

func (s *NotificationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *NotificationServiceSuite) setupService() {
	s.service = NewNotificationService(ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		Cache:            s.GetCache(),
		NotificationRepo: s.GetStores().NotificationRepo,
		ActivityRepo:     s.GetStores().ActivityRepo,
	})
}

func (s *NotificationServiceSuite) createNotification(userID, title string) *notification.Notification {
	req := dto.CreateNotificationRequest{
		UserID: userID,
		Title:  title,
	}
	n := req.ToNotification()
	s.NoError(s.service.CreateNotification(s.GetContext(), n))
	return n
}

func (s *NotificationServiceSuite) TestCreateNotificationDefaults() {
	n := s.createNotification(types.DefaultUserID, "Invoice overdue")

	s.NotEmpty(n.ID)
	s.Equal(types.NotificationTypeInfo, n.NotificationType)
	s.Equal(types.NotificationPriorityNormal, n.Priority)
	s.Equal(types.DefaultTenantID, n.TenantID)
	s.False(n.IsRead)
}

func (s *NotificationServiceSuite) TestCreateNotificationRequiresUser() {
	err := s.service.CreateNotification(s.GetContext(), &notification.Notification{
		Title: "Orphaned",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *NotificationServiceSuite) TestCreateNotificationRequiresTitle() {
	err := s.service.CreateNotification(s.GetContext(), &notification.Notification{
		UserID: types.DefaultUserID,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *NotificationServiceSuite) TestListNotificationsScopedToUser() {
	s.createNotification(types.DefaultUserID, "Mine")
	s.createNotification("user_other", "Theirs")

	items, err := s.service.ListNotifications(s.GetContext(), types.DefaultUserID, types.NewDefaultQueryFilter())
	s.NoError(err)
	s.Len(items, 1)
	s.Equal("Mine", items[0].Title)
}

func (s *NotificationServiceSuite) TestUnreadCount() {
	s.createNotification(types.DefaultUserID, "First")
	second := s.createNotification(types.DefaultUserID, "Second")

	count, err := s.service.UnreadCount(s.GetContext(), types.DefaultUserID)
	s.NoError(err)
	s.Equal(2, count)

	s.NoError(s.service.MarkRead(s.GetContext(), second.ID))

	count, err = s.service.UnreadCount(s.GetContext(), types.DefaultUserID)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *NotificationServiceSuite) TestMarkReadSetsReadAt() {
	n := s.createNotification(types.DefaultUserID, "Read me")

	s.NoError(s.service.MarkRead(s.GetContext(), n.ID))

	stored, err := s.GetStores().NotificationRepo.Get(s.GetContext(), n.ID)
	s.NoError(err)
	s.True(stored.IsRead)
	s.NotNil(stored.ReadAt)
}

func (s *NotificationServiceSuite) TestMarkReadOtherUserDenied() {
	n := s.createNotification("user_other", "Not yours")

	err := s.service.MarkRead(s.GetContext(), n.ID)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *NotificationServiceSuite) TestMarkAllRead() {
	s.createNotification(types.DefaultUserID, "First")
	s.createNotification(types.DefaultUserID, "Second")

	s.NoError(s.service.MarkAllRead(s.GetContext(), types.DefaultUserID))

	count, err := s.service.UnreadCount(s.GetContext(), types.DefaultUserID)
	s.NoError(err)
	s.Zero(count)
}

func (s *NotificationServiceSuite) TestDeleteNotification() {
	n := s.createNotification(types.DefaultUserID, "Ephemeral")

	s.NoError(s.service.DeleteNotification(s.GetContext(), n.ID))

	_, err := s.GetStores().NotificationRepo.Get(s.GetContext(), n.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *NotificationServiceSuite) TestDeleteOtherUserDenied() {
	n := s.createNotification("user_other", "Not yours")

	err := s.service.DeleteNotification(s.GetContext(), n.ID)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}
