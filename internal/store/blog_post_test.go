package store

import (
	"testing"

	"scholarsite/internal/models"
)

func TestBlogPostCreateSetsPublishedAt(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	t.Cleanup(func() { cleanBlogPosts(t, db, "test-published-post") })

	created, err := s.Create(&models.BlogPost{
		Title:       "Test Published Post",
		Slug:        "test-published-post",
		Content:     "<p>body</p>",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PublishedAt == nil {
		t.Error("expected published_at to be set on publish")
	}
}

func TestBlogPostFindBySlugHidesDrafts(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	t.Cleanup(func() { cleanBlogPosts(t, db, "test-draft-post") })

	created, err := s.Create(&models.BlogPost{
		Title:       "Test Draft Post",
		Slug:        "test-draft-post",
		IsPublished: false,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PublishedAt != nil {
		t.Error("draft should not get a published_at timestamp")
	}

	found, err := s.FindBySlug("test-draft-post")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found != nil {
		t.Error("draft should not be visible through FindBySlug")
	}

	// The admin path still sees it.
	byID, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil {
		t.Fatal("expected draft via FindByID")
	}

	exists, err := s.SlugExists("test-draft-post")
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Error("SlugExists should count drafts")
	}
}

func TestBlogPostIncrementViews(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	t.Cleanup(func() { cleanBlogPosts(t, db, "test-viewed-post") })

	created, err := s.Create(&models.BlogPost{
		Title:       "Test Viewed Post",
		Slug:        "test-viewed-post",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ViewsCount != 0 {
		t.Fatalf("expected fresh post with 0 views, got %d", created.ViewsCount)
	}

	for i := 0; i < 3; i++ {
		if err := s.IncrementViews(created.ID); err != nil {
			t.Fatalf("IncrementViews: %v", err)
		}
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.ViewsCount != 3 {
		t.Errorf("expected 3 views, got %d", found.ViewsCount)
	}
}

func TestBlogPostPublishViaUpdate(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)
	t.Cleanup(func() { cleanBlogPosts(t, db, "test-later-post") })

	created, err := s.Create(&models.BlogPost{
		Title: "Test Later Post",
		Slug:  "test-later-post",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.IsPublished = true
	if err := s.Update(created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := s.FindBySlug("test-later-post")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("post should be public after publishing")
	}
	if found.PublishedAt == nil {
		t.Error("publishing via Update should set published_at")
	}
}
