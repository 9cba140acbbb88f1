package service

import "gamenight/internal/models"

// AttachComments sets each post's Comments to the comments whose PostID
// matches it, in the order they appear in comments. Every post gets a
// non-nil slice. Comments for posts not in posts are dropped.
func AttachComments(posts []models.Post, comments []models.Comment) []models.Post {
	byID := make(map[int64]int, len(posts))
	for i := range posts {
		posts[i].Comments = make([]models.Comment, 0)
		byID[posts[i].ID] = i
	}
	for _, c := range comments {
		if i, ok := byID[c.PostID]; ok {
			posts[i].Comments = append(posts[i].Comments, c)
		}
	}
	return posts
}

func postIDs(posts []models.Post) []int64 {
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}
