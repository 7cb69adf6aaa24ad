package models

import "testing"

func TestDefaultPageContent(t *testing.T) {
	content := DefaultPageContent()

	if content.ID != PageContentID {
		t.Errorf("ID = %d, want %d", content.ID, PageContentID)
	}
	if content.Home.HeroTitle1 != "Eat" || content.Home.HeroTitle3 != "Out" {
		t.Errorf("unexpected hero titles: %q %q", content.Home.HeroTitle1, content.Home.HeroTitle3)
	}
	if len(content.Gallery.Images) != 4 {
		t.Errorf("gallery images = %d, want 4", len(content.Gallery.Images))
	}
	if content.Contact.Email == "" || content.Contact.Phone == "" {
		t.Error("contact section defaults missing")
	}
	if content.SocialLinks.Facebook != "" {
		t.Errorf("social links should default empty, got %q", content.SocialLinks.Facebook)
	}
}
