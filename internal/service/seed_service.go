package service

import (
	"context"
	"fmt"
	"time"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

type ISeedService interface {
	// Seed loads the demo fixtures when no user exists yet. It reports whether it did.
	Seed(ctx context.Context) (bool, error)
}

type seedService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	now        func() time.Time
}

func NewSeedService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, now func() time.Time) ISeedService {
	if now == nil {
		now = time.Now
	}
	return &seedService{
		uowFactory: uowFactory,
		logger:     log,
		now:        now,
	}
}

var (
	seedMoodValues  = []int{70, 60, 45, 50, 30, 65, 75}
	seedMoodStatus  = []string{"good", "good", "neutral", "neutral", "bad", "good", "good"}
	seedSleepHours  = []float64{6.5, 7.5, 7.0, 6.0, 5.0, 8.0, 8.5}
	seedMeditations = []entity.Meditation{
		{Title: "Stress Relief", Description: "Calm your mind with deep breathing and guided visualization.", Duration: 10, Type: entity.MeditationGuided},
		{Title: "Deep Breathing", Description: "Simple breathing exercise to center yourself.", Duration: 5, Type: entity.MeditationBreathing},
		{Title: "Daily Meditation", Description: "Focus on the present moment.", Duration: 10, Type: entity.MeditationGuided},
	}
	seedSounds = []entity.CalmingSound{
		{Title: "Ocean Waves", Description: "Soothing water sounds", Category: entity.SoundNature, Duration: 900, AudioUrl: "https://cdn.pixabay.com/audio/2022/01/18/audio_d0b9fbac55.mp3"},
		{Title: "Rain", Description: "Gentle rainfall", Category: entity.SoundNature, Duration: 900, AudioUrl: "https://cdn.pixabay.com/audio/2022/03/10/audio_1b1616d358.mp3"},
		{Title: "Fireplace", Description: "Crackling fire", Category: entity.SoundAmbient, Duration: 900, AudioUrl: "https://cdn.pixabay.com/audio/2022/01/27/audio_c4a49a08cc.mp3"},
		{Title: "Forest", Description: "Birds and nature", Category: entity.SoundNature, Duration: 900, AudioUrl: "https://cdn.pixabay.com/audio/2022/10/30/audio_946bc812c9.mp3"},
	}
	seedChat = []entity.ChatMessage{
		{Role: entity.ChatRoleSystem, Content: "I am your AI mental health companion. How can I help you today?"},
		{Role: entity.ChatRoleUser, Content: "I've been feeling stressed at work lately."},
		{Role: entity.ChatRoleSystem, Content: "I'm sorry to hear that you're experiencing stress at work. Would you like to try a 5-minute breathing exercise to help manage your stress?"},
	}
)

func (s *seedService) Seed(ctx context.Context) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	if err := s.seed(ctx, uow); err != nil {
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	s.logger.Info("SEED", "Fixtures loaded", map[string]interface{}{
		"meditations": len(seedMeditations),
		"sounds":      len(seedSounds),
	})
	return true, nil
}

func (s *seedService) seed(ctx context.Context, uow unitofwork.UnitOfWork) error {
	now := s.now()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	user := &entity.User{
		Username:     "alex",
		PasswordHash: string(hash),
		Name:         "Alex Morgan",
		Email:        "alex@example.com",
		CreatedAt:    now,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	for i := range seedMeditations {
		m := seedMeditations[i]
		if err := uow.MeditationRepository().Create(ctx, &m); err != nil {
			return fmt.Errorf("seed meditation %q: %w", m.Title, err)
		}
	}

	for i := range seedSounds {
		sound := seedSounds[i]
		if err := uow.CalmingSoundRepository().Create(ctx, &sound); err != nil {
			return fmt.Errorf("seed sound %q: %w", sound.Title, err)
		}
	}

	posts := []entity.CommunityPost{
		{
			Content:   "Taking five minutes to meditate before work has changed my entire day. I'm much more focused and less stressed.",
			UserId:    user.Id,
			Likes:     24,
			Comments:  3,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			Content:   "I've struggled with insomnia for years. The sleep sounds have been helping me fall asleep faster. Thank you.",
			UserId:    user.Id,
			Likes:     18,
			Comments:  2,
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}
	for i := range posts {
		if err := uow.CommunityPostRepository().Create(ctx, &posts[i]); err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
	}

	// One week of history, oldest first, ending today.
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -(6 - i))

		note := fmt.Sprintf("Feeling %s today", seedMoodStatus[i])
		mood := &entity.MoodEntry{
			UserId:    user.Id,
			Mood:      entity.MoodTypes[i%len(entity.MoodTypes)],
			Value:     seedMoodValues[i],
			Note:      &note,
			CreatedAt: day,
		}
		if err := uow.MoodRepository().Create(ctx, mood); err != nil {
			return fmt.Errorf("seed mood: %w", err)
		}

		hours := seedSleepHours[i]
		quality := entity.SleepQualityForHours(hours)
		empty := ""
		record := &entity.SleepEntry{
			UserId:    user.Id,
			Hours:     hours,
			Quality:   &quality,
			Note:      &empty,
			CreatedAt: day,
		}
		if err := uow.SleepRepository().Create(ctx, record); err != nil {
			return fmt.Errorf("seed sleep: %w", err)
		}
	}

	if _, err := uow.ChatHistoryRepository().Upsert(ctx, user.Id, seedChat); err != nil {
		return fmt.Errorf("seed chat history: %w", err)
	}
	return nil
}
