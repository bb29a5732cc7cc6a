package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Seeder drives the full seeding flow: users, the follow mesh between them,
// and engagement (posts, replies, shares, likes).
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder with default options.
func NewSeeder(db *gorm.DB) *Seeder {
	return NewSeederWithOptions(db, SeedOptions{})
}

// NewSeederWithOptions creates a Seeder with the given factory options.
func NewSeederWithOptions(db *gorm.DB, opts SeedOptions) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	if s.factory.opts.DryRun {
		return nil
	}
	sql := `TRUNCATE TABLE likes, follows, posts, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedSocialMesh creates `numUsers` accounts and a follow graph between
// them. Every user follows a random subset of the others so feeds have
// content immediately.
func (s *Seeder) SeedSocialMesh(numUsers int) ([]models.User, error) {
	log.Printf("Seeding %d users...", numUsers)

	users := make([]models.User, 0, numUsers)

	// Fixed accounts for manual testing; the rest are generated.
	for _, username := range []string{"ripple", "test"} {
		if len(users) >= numUsers {
			break
		}
		username := username
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = username
			u.Email = fmt.Sprintf("%s@example.com", username)
			u.Bio = "One of the OGs."
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", username, err)
		}
		users = append(users, *user)
	}

	for i := len(users); i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	// Follow mesh: each user follows roughly 10% of the others.
	edges := 0
	for i := range users {
		target := len(users) / 10
		if target < 2 {
			target = 2
		}
		for j := 0; j < target; j++ {
			other := &users[s.factory.rng.Intn(len(users))]
			if other.ID == users[i].ID {
				continue
			}
			if err := s.factory.CreateFollow(&users[i], other); err != nil {
				// Duplicate edges are expected with random picks; skip them.
				continue
			}
			edges++
		}
	}

	log.Printf("Created %d users and %d follow edges", len(users), edges)
	return users, nil
}

// SeedEngagement creates `numPosts` posts attributed to random users, with a
// share of replies and shares mixed in, then sprinkles likes across them.
func (s *Seeder) SeedEngagement(users []models.User, numPosts int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attribute posts to")
	}

	log.Printf("Seeding %d posts...", numPosts)
	posts := make([]models.Post, 0, numPosts)

	for i := 0; i < numPosts; i++ {
		author := &users[s.factory.rng.Intn(len(users))]

		var (
			post *models.Post
			err  error
		)
		roll := s.factory.rng.Float32()
		switch {
		case roll < 0.2 && len(posts) > 0:
			parent := &posts[s.factory.rng.Intn(len(posts))]
			post, err = s.factory.CreateReply(author, parent)
		case roll < 0.3 && len(posts) > 0:
			original := &posts[s.factory.rng.Intn(len(posts))]
			post, err = s.factory.CreateShare(author, original)
		default:
			post, err = s.factory.CreatePost(author)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, *post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	// Likes: up to 10 random likers per post. Duplicate (user, post) pairs
	// hit the unique index and are skipped.
	liked := 0
	for i := range posts {
		for j := 0; j < s.factory.rng.Intn(11); j++ {
			liker := &users[s.factory.rng.Intn(len(users))]
			if err := s.factory.CreateLike(liker, &posts[i]); err != nil {
				continue
			}
			liked++
		}
	}

	log.Printf("Created %d posts and %d likes", len(posts), liked)
	return posts, nil
}
