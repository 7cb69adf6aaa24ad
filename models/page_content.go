package models

import "time"

// PageContentID is the fixed primary key of the singleton row. Using a known
// key lets the lazy create be an idempotent conditional insert instead of a
// racy find-then-create.
const PageContentID uint = 1

type HomeSection struct {
	HeroTitle1            string `json:"heroTitle1"`
	HeroTitle2            string `json:"heroTitle2"`
	HeroTitle3            string `json:"heroTitle3"`
	HeroSubtitle          string `json:"heroSubtitle"`
	HeroDescription       string `json:"heroDescription"`
	CTAButton1            string `json:"ctaButton1"`
	CTAButton2            string `json:"ctaButton2"`
	PopularDishesTitle    string `json:"popularDishesTitle"`
	PopularDishesSubtitle string `json:"popularDishesSubtitle"`
	PopularDishesText     string `json:"popularDishesText"`
	HeroBackgroundImage   string `json:"heroBackgroundImage"`
	AboutSectionImage     string `json:"aboutSectionImage"`
}

type AboutSection struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Tagline      string `json:"tagline"`
	WelcomeTitle string `json:"welcomeTitle"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Description3 string `json:"description3"`
	Image        string `json:"image"`
}

type GallerySection struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type ContactSection struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LocationTitle string `json:"locationTitle"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2"`
	AddressLine3  string `json:"addressLine3"`
	AddressLine4  string `json:"addressLine4"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// PageContent holds all editable site copy as one document. Exactly one row
// exists (id = PageContentID); sections are stored as JSON columns.
type PageContent struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Home        HomeSection    `json:"home" gorm:"serializer:json"`
	About       AboutSection   `json:"about" gorm:"serializer:json"`
	Gallery     GallerySection `json:"gallery" gorm:"serializer:json"`
	Contact     ContactSection `json:"contact" gorm:"serializer:json"`
	SocialLinks SocialLinks    `json:"socialLinks" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// DefaultPageContent returns the singleton populated with the site's
// original copy, used when the row does not exist yet.
func DefaultPageContent() PageContent {
	return PageContent{
		ID: PageContentID,
		Home: HomeSection{
			HeroTitle1:            "Eat",
			HeroTitle2:            "&",
			HeroTitle3:            "Out",
			HeroSubtitle:          "Food is Happiness",
			HeroDescription:       "Experience premium casual dining with authentic North Indian, Punjabi, Chinese, and Fast Food in the heart of Sri Muktsar Sahib.",
			CTAButton1:            "View Menu",
			CTAButton2:            "Book a Table",
			PopularDishesTitle:    "Popular",
			PopularDishesSubtitle: "Dishes",
			PopularDishesText:     "Discover our most loved dishes, crafted with authentic flavors",
			HeroBackgroundImage:   "/images/MAINPIC.png",
			AboutSectionImage:     "/images/MAINPIC1.png",
		},
		About: AboutSection{
			Title:        "About",
			Subtitle:     "Eat & Out",
			Tagline:      "Food is Happiness",
			WelcomeTitle: "Welcome to Eat & Out",
			Description1: "Located in the vibrant Ranjit Avenue area of Sri Muktsar Sahib, Eat & Out is your destination for premium casual dining. We bring together the best of North Indian, Punjabi, Chinese, and Fast Food cuisines, all under one roof.",
			Description2: "Our restaurant is conveniently situated on Malout Road, near the Bus Stand, opposite Dhaliwal Eye Hospital. Whether you're looking for a quick bite or a full-course meal, we have something to satisfy every craving.",
			Description3: "We believe that food is happiness, and every dish we serve is crafted with passion, authentic flavors, and the finest ingredients.",
			Image:        "/images/MAINPIC2.png",
		},
		Gallery: GallerySection{
			Title:       "Our",
			Subtitle:    "Gallery",
			Description: "Take a visual journey through our restaurant, dishes, and dining experience.",
			Images:      []string{"/images/MAINPIC.png", "/images/MAINPIC1.png", "/images/MAINPIC2.png", "/images/MAINPIC3.png"},
		},
		Contact: ContactSection{
			Title:         "Contact",
			Subtitle:      "Us",
			Description:   "Have a question or want to make a reservation? We'd love to hear from you!",
			Email:         "info@eatandout.com",
			Phone:         "62837-71955",
			LocationTitle: "Location",
			AddressLine1:  "Malout Road, Near Bus Stand",
			AddressLine2:  "Opposite Dhaliwal Eye Hospital",
			AddressLine3:  "Ranjit Avenue",
			AddressLine4:  "Sri Muktsar Sahib, Punjab",
		},
		SocialLinks: SocialLinks{},
	}
}
