package service

import (
	"strings"

	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/queue"
	"github.com/straatfanaat/shop/internal/repository"
)

// NewsletterService handles signups and the admin subscriber list.
type NewsletterService struct {
	repo        repository.NewsletterRepository
	queueClient *queue.Client
}

// NewNewsletterService creates the newsletter service.
func NewNewsletterService(repo repository.NewsletterRepository, queueClient *queue.Client) *NewsletterService {
	return &NewsletterService{repo: repo, queueClient: queueClient}
}

// Subscribe adds an email to the list. A previously unsubscribed email
// is reactivated; an already active one is refused.
func (s *NewsletterService) Subscribe(email, language string) (*models.NewsletterSubscriber, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	language = normalizeLanguage(language)

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return nil, ErrAlreadySubscribed
		}
		if err := s.repo.Update(existing.ID, map[string]interface{}{
			"is_active": true,
			"language":  language,
		}); err != nil {
			return nil, err
		}
		existing.IsActive = true
		existing.Language = language
		return existing, nil
	}

	subscriber := models.NewsletterSubscriber{
		Email:    email,
		Language: language,
		IsActive: true,
	}
	if err := s.repo.Create(&subscriber); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueNewsletterWelcome(queue.NewsletterWelcomePayload{
		Email:    subscriber.Email,
		Language: subscriber.Language,
	}); err != nil {
		logger.Warnw("newsletter_welcome_enqueue_failed", "email", subscriber.Email, "error", err)
	}

	logger.Infow("newsletter_subscribed", "email", subscriber.Email, "language", subscriber.Language)
	return &subscriber, nil
}

// Unsubscribe deactivates a subscription.
func (s *NewsletterService) Unsubscribe(email string) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing == nil || !existing.IsActive {
		return ErrNotFound
	}
	return s.repo.Update(existing.ID, map[string]interface{}{"is_active": false})
}

// List returns the admin subscriber list.
func (s *NewsletterService) List(filter repository.NewsletterListFilter) ([]models.NewsletterSubscriber, int64, error) {
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 50
	}
	return s.repo.List(filter)
}

// Remove deletes a subscriber outright.
func (s *NewsletterService) Remove(id uint) error {
	return s.repo.Delete(id)
}
