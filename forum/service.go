// Package forum manages discussion posts and their nested replies.
// This file, `service.go`, contains the business logic: newest-first post
// insertion, reply synthesis, and persistence of the whole collection on
// every mutation.
package forum

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/syedOmegaPrime/SolitudeFinalProject/apperror"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
)

// Service is the forum store. Posts are newest-first by insertion order,
// not by timestamp sort; replies append in arrival order under their post.
type Service struct {
	store  *localstore.Store
	logger *slog.Logger

	// now is the clock used when synthesizing replies; injectable so tests
	// can pin timestamps.
	now func() time.Time

	mu    sync.Mutex
	posts []Post
}

// NewService creates a forum Service, loading any persisted posts.
func NewService(store *localstore.Store, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, logger: logger, now: time.Now}
	if _, err := store.Load(localstore.ForumPostsKey, &s.posts); err != nil {
		return nil, err
	}
	return s, nil
}

// AddPost prepends the post and persists. The caller supplies a fully
// formed post (generated id, creation timestamp); the store does not
// reshape it.
func (s *Service) AddPost(post Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append([]Post{post}, s.posts...)
	if err := s.store.Save(localstore.ForumPostsKey, s.posts); err != nil {
		s.posts = s.posts[1:]
		return err
	}
	s.logger.Info("forum post added", "id", post.ID, "title", post.Title)
	return nil
}

// AddReply synthesizes a reply (fresh id, postId back-reference, creation
// timestamp of now), appends it to the post's reply list and persists the
// whole collection.
//
// An unknown post id fails loudly with a NotFoundError and changes nothing.
// A silent no-op here would mask caller bugs; the loud miss keeps the
// post-reply back-reference checkable.
func (s *Service) AddReply(postID string, input ReplyInput) (*Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}

		reply := Reply{
			ID:           ident.New(ident.ReplyPrefix),
			PostID:       postID,
			UserID:       input.UserID,
			UserName:     input.UserName,
			Content:      input.Content,
			CreationDate: s.now().UTC().Format(time.RFC3339),
		}
		s.posts[i].Replies = append(s.posts[i].Replies, reply)

		if err := s.store.Save(localstore.ForumPostsKey, s.posts); err != nil {
			s.posts[i].Replies = s.posts[i].Replies[:len(s.posts[i].Replies)-1]
			return nil, err
		}
		return &reply, nil
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("post with id '%s' not found", postID), nil)
}

// Posts returns a copy of the post list, newest first. Reply slices are
// copied too so callers cannot mutate stored state through the result.
func (s *Service) Posts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p
		if p.Replies != nil {
			out[i].Replies = make([]Reply, len(p.Replies))
			copy(out[i].Replies, p.Replies)
		}
	}
	return out
}

// Get returns the post with the given id, or an explicit NotFound for the
// detail view to render.
func (s *Service) Get(id string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			out := s.posts[i]
			if out.Replies != nil {
				out.Replies = make([]Reply, len(s.posts[i].Replies))
				copy(out.Replies, s.posts[i].Replies)
			}
			return &out, nil
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("post with id '%s' not found", id), nil)
}
