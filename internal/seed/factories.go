// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// hashtagPool feeds generated posts a realistic topic spread.
var hashtagPool = []string{
	"golang", "coffee", "music", "travel", "fitness", "gaming",
	"art", "food", "tech", "news", "books", "photography",
}

// SeedOptions tunes factory behavior.
type SeedOptions struct {
	// DryRun builds entities and assigns synthetic IDs without touching the DB.
	DryRun bool
	// SkipBcrypt stores the plain seed password, skipping hashing for speed.
	SkipBcrypt bool
	// MaxDays spreads generated created_at timestamps over this many days back.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// spreadCreatedAt returns a timestamp scattered over the configured window so
// recency-sensitive queries (feed, trending) have something to chew on.
func (f *Factory) spreadCreatedAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:       gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:          gofakeit.Email(),
		Bio:            gofakeit.Sentence(10),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Username, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given
// user. Roughly half the posts carry hashtags, woven into the content so the
// stored tag list matches what the text actually says.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	content := gofakeit.Sentence(f.rng.Intn(12) + 4)

	var tags []string
	if f.rng.Float32() < 0.5 {
		count := f.rng.Intn(3) + 1
		seen := map[string]bool{}
		for i := 0; i < count; i++ {
			tag := hashtagPool[f.rng.Intn(len(hashtagPool))]
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
			content += " #" + tag
		}
	}

	post := &models.Post{
		Content:   strings.TrimSpace(content),
		UserID:    user.ID,
		Hashtags:  tags,
		Type:      models.PostTypeOriginal,
		CreatedAt: f.spreadCreatedAt(),
	}

	for _, override := range overrides {
		override(post)
	}

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreatePost: user=%d tags=%v", post.UserID, post.Hashtags)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateReply persists a reply to the given parent post.
func (f *Factory) CreateReply(user *models.User, parent *models.Post, overrides ...func(*models.Post)) (*models.Post, error) {
	return f.CreatePost(user, append([]func(*models.Post){func(p *models.Post) {
		p.ParentPostID = &parent.ID
		if p.CreatedAt.Before(parent.CreatedAt) {
			p.CreatedAt = parent.CreatedAt.Add(time.Duration(f.rng.Intn(120)+1) * time.Minute)
		}
	}}, overrides...)...)
}

// CreateShare persists a share of the given original post.
func (f *Factory) CreateShare(user *models.User, original *models.Post) (*models.Post, error) {
	post := &models.Post{
		Content:        gofakeit.Sentence(5),
		UserID:         user.ID,
		OriginalPostID: &original.ID,
		Type:           models.PostTypeShare,
		CreatedAt:      f.spreadCreatedAt(),
	}

	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		log.Printf("[dry-run] CreateShare: user=%d original=%d", post.UserID, original.ID)
		return post, nil
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateFollow persists a follower -> following edge.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	follow := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}

	if f.opts.DryRun {
		f.nextID++
		follow.ID = f.nextID
		return nil
	}
	return f.db.Create(follow).Error
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}

	if f.opts.DryRun {
		f.nextID++
		like.ID = f.nextID
		return nil
	}
	return f.db.Create(like).Error
}
