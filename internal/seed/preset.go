package seed

import (
	"quill/internal/models"

	"gorm.io/gorm"
)

// Run seeds a full demo dataset: users, groups, posts with comments, and a
// follow mesh so the feed pages have content immediately.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	groups := make([]*models.Group, 0, opts.Groups)
	for i := 0; i < opts.Groups; i++ {
		group, err := f.CreateGroup()
		if err != nil {
			return err
		}
		groups = append(groups, group)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			// Roughly half the posts land in a group.
			var group *models.Group
			if len(groups) > 0 && f.rng.Intn(2) == 0 {
				group = groups[f.rng.Intn(len(groups))]
			}

			post, err := f.CreatePost(user, group)
			if err != nil {
				return err
			}

			for j := 0; j < opts.CommentsPerPost; j++ {
				commenter := users[f.rng.Intn(len(users))]
				if _, err := f.CreateComment(commenter, post); err != nil {
					return err
				}
			}
		}
	}

	for _, user := range users {
		for i := 0; i < opts.FollowsPerUser; i++ {
			author := users[f.rng.Intn(len(users))]
			if err := f.CreateFollow(user, author); err != nil {
				return err
			}
		}
	}

	return nil
}
