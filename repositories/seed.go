package repositories

import (
	"fmt"

	"go.uber.org/zap"

	"daleel-cms/models"
)

func str(s string) *string { return &s }

// InitializeSampleData loads the starter content set. It is a no-op when
// any user already exists, so calling it on every boot (or against an
// already-populated database) never double-seeds.
func InitializeSampleData(store Storage, log *zap.Logger) error {
	users, err := store.GetAllUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		log.Info("Sample data already present, skipping seed")
		return nil
	}

	admin, err := store.CreateUser(models.InsertUser{
		Username:       "admin",
		Password:       "admin123",
		Name:           "Site Admin",
		Email:          "admin@example.com",
		AvatarInitials: "SA",
		AvatarColor:    "#1a68d4",
		Role:           models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if _, err := store.CreateUser(models.InsertUser{
		Username:       "editor",
		Password:       "editor123",
		Name:           "Content Editor",
		Email:          "editor@example.com",
		AvatarInitials: "CE",
		AvatarColor:    "#10b981",
		Role:           models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	rootCategories := []models.InsertCategory{
		{
			NameEn:        "Why Islam",
			NameSo:        str("Maxay Islaamku"),
			DescriptionEn: str("Evidence for Islam and why it is the truth"),
			DescriptionSo: str("Caddaynta Islaamka iyo sababta ay xaqiiqadu tahay"),
			Slug:          "why-islam",
			Icon:          "star",
			Order:         1,
			CreatedBy:     admin.ID,
		},
		{
			NameEn:        "Philosophical Misconceptions",
			NameSo:        str("Qalad-fahamka Falsafadeed"),
			DescriptionEn: str("Refutations of philosophical arguments against Islam"),
			DescriptionSo: str("Diidmada doodaha falsafadeed ee ka soo horjeeda Islaamka"),
			Slug:          "philosophical-misconceptions",
			Icon:          "brain",
			Order:         2,
			CreatedBy:     admin.ID,
		},
		{
			NameEn:        "Historical Misconceptions",
			NameSo:        str("Qalad-fahamka Taariikheed"),
			DescriptionEn: str("Correcting historical errors about Islam"),
			DescriptionSo: str("Saxitaanka khaladaadka taariikheed ee ku saabsan Islaamka"),
			Slug:          "historical-misconceptions",
			Icon:          "landmark",
			Order:         3,
			CreatedBy:     admin.ID,
		},
		{
			NameEn:        "Qur'anic Misconceptions",
			NameSo:        str("Qalad-fahamka Quraanka"),
			DescriptionEn: str("Addressing misunderstandings about the Quran"),
			DescriptionSo: str("Wax ka qabashada khalad-fahamka ku saabsan Quraanka"),
			Slug:          "quranic-misconceptions",
			Icon:          "book",
			Order:         4,
			CreatedBy:     admin.ID,
		},
		{
			NameEn:        "Modern Ideological Debates",
			NameSo:        str("Doodaha Fikradeed ee Casriga ah"),
			DescriptionEn: str("Islamic responses to modern ideological challenges"),
			DescriptionSo: str("Jawaabaha Islaamiga ah ee caqabadaha fikradeed ee casriga ah"),
			Slug:          "modern-ideological-debates",
			Icon:          "message-circle",
			Order:         5,
			CreatedBy:     admin.ID,
		},
		{
			NameEn:        "Multimedia Resources",
			NameSo:        str("Ilaha Warbaahinta"),
			DescriptionEn: str("Videos, presentations, and interactive resources"),
			DescriptionSo: str("Fiidiyowyada, soo-bandhigyada, iyo ilaha wada-dhismeed"),
			Slug:          "multimedia",
			Icon:          "video",
			Order:         6,
			CreatedBy:     admin.ID,
		},
	}

	created := make([]*models.Category, 0, len(rootCategories))
	for _, c := range rootCategories {
		cat, err := store.AddCategory(c)
		if err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		created = append(created, cat)
	}

	evidenceForGod, err := store.AddCategory(models.InsertCategory{
		NameEn:        "Evidence for God",
		NameSo:        str("Caddaynta Ilaah"),
		DescriptionEn: str("Logical and rational arguments for the existence of God"),
		DescriptionSo: str("Doodaha caqliga ah iyo kuwa macquulka ah ee jiritaanka Ilaahay"),
		Slug:          "evidence-for-god",
		Icon:          "sun",
		ParentID:      &created[0].ID,
		Order:         1,
		CreatedBy:     admin.ID,
	})
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	articles := []models.InsertArticle{
		{
			TitleEn: "The Contingency Argument for God",
			TitleSo: str("Doodda Suurtogalnimada ee Ilaahay"),
			ContentEn: `# The Contingency Argument for God's Existence

The contingency argument is one of the most compelling logical proofs for the existence of God. It is based on the observation that everything in our universe is contingent - meaning it depends on something else for its existence.

## The Argument

1. Everything that exists has an explanation of its existence, either in the necessity of its own nature or in an external cause.
2. If the universe has an explanation of its existence, that explanation is God.
3. The universe exists.
4. Therefore, the universe has an explanation of its existence (from 1 and 3).
5. Therefore, the explanation of the universe's existence is God (from 2 and 4).

## Why This Matters

The universe's existence is contingent - it didn't have to exist, and it depends on prior conditions. This leads us logically to a necessary being that exists by the necessity of its own nature.`,
			ContentSo:  str("Somali translation would go here"),
			ExcerptEn:  str("A logical proof for God based on the contingent nature of the universe"),
			ExcerptSo:  str("Caddayn caqli ah oo Ilaahay ku salaysan dabeecadda suurtogalnimada ee koonka"),
			Slug:       "contingency-argument-for-god",
			Type:       "evidence",
			CategoryID: evidenceForGod.ID,
			Tags:       []string{"philosophy", "logic", "existence of God"},
			Published:  true,
			AddedBy:    admin.ID,
		},
		{
			TitleEn: "The Problem of Evil - A Muslim Response",
			TitleSo: str("Dhibaatada Sharka - Jawaab Muslim ah"),
			ContentEn: `# The "Problem of Evil" - A Muslim Response

One of the most common objections to belief in God is the "problem of evil." If God is all-powerful and all-good, why does evil exist?

## The Islamic Response

1. This world is a place of test and trial: *"[He] who created death and life to test you [as to] which of you is best in deed."* (Quran 67:2)
2. Free will necessarily means the ability to do evil; without it moral responsibility would be meaningless.
3. Our human perspective is severely limited; what appears evil in isolation may serve a greater good.
4. Evil is not a substance but the absence of good, as darkness is the absence of light.
5. Any apparent injustice in this world will be rectified in the Hereafter.

## Conclusion

The existence of evil is consistent with God's wisdom, justice, and mercy when understood within the complete framework of creation, free will, and the Hereafter.`,
			ContentSo:  str("Somali translation would go here"),
			ExcerptEn:  str("Understanding why the existence of evil does not contradict belief in God"),
			ExcerptSo:  str("Fahamka sababta jiritaanka sharka uusan khilaafin rumaysanka Ilaah"),
			Slug:       "problem-of-evil-muslim-response",
			Type:       "refutation",
			CategoryID: created[1].ID,
			Tags:       []string{"philosophy", "evil", "theodicy"},
			Published:  true,
			AddedBy:    admin.ID,
		},
	}
	for _, a := range articles {
		if _, err := store.AddArticle(a); err != nil {
			return fmt.Errorf("seed articles: %w", err)
		}
	}

	mediaItems := []models.InsertMedia{
		{
			TitleEn:       "The Design Argument Explained",
			TitleSo:       str("Doodda Naqshadeynta oo La Sharxay"),
			DescriptionEn: str("A presentation explaining the teleological argument for God's existence"),
			DescriptionSo: str("Soo-bandhig sharxaya doodda teleological ee jiritaanka Ilaahay"),
			Type:          "presentation",
			URL:           "https://example.com/presentations/design-argument.pdf",
			ThumbnailURL:  str("https://images.unsplash.com/photo-1566378246598-5b11a0d486cc"),
			CategoryID:    evidenceForGod.ID,
			AddedBy:       admin.ID,
			Tags:          []string{"design", "teleology", "creationism"},
		},
		{
			TitleEn:       "Universe Simulation - Fine Tuning",
			TitleSo:       str("Simulation Universe - Habayn Sare"),
			DescriptionEn: str("3D interactive model showing the fine-tuning of universal constants"),
			DescriptionSo: str("Muuqaal 3D oo wada-dhisme ah oo muujinaya habaynta sare ee joogtada universal"),
			Type:          "3d",
			URL:           "https://example.com/models/fine-tuning-3d.glb",
			ThumbnailURL:  str("https://images.unsplash.com/photo-1462331940025-496dfbfc7564"),
			CategoryID:    evidenceForGod.ID,
			AddedBy:       admin.ID,
			Tags:          []string{"cosmology", "fine-tuning", "physics"},
		},
	}
	for _, m := range mediaItems {
		if _, err := store.AddMedia(m); err != nil {
			return fmt.Errorf("seed media: %w", err)
		}
	}

	questions := []models.InsertQuestion{
		{
			Name:       str("Ahmed"),
			Email:      str("ahmed@example.com"),
			QuestionEn: "How do I respond to claims that the Quran contains scientific errors?",
			QuestionSo: str("Sideen uga jawaabaa sheegtayada ah in Quraanku ay ku jiraan khaladaad cilmiyeed?"),
		},
		{
			Name:       str("Sarah"),
			Email:      str("sarah@example.com"),
			QuestionEn: "What is the Islamic stance on evolution?",
			QuestionSo: str("Waa maxay mowqifka Islaamka ee ku aaddan koboca?"),
		},
	}
	for _, q := range questions {
		if _, err := store.AddQuestion(q); err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
	}

	library, err := store.AddLibrary(models.InsertLibrary{
		Name:        "Community Reading Room",
		Description: str("Books recommended by the editorial team"),
		CreatedBy:   admin.ID,
	})
	if err != nil {
		return fmt.Errorf("seed bookshelf: %w", err)
	}
	books := []models.InsertBook{
		{
			LibraryID:   library.ID,
			Title:       "The Divine Reality",
			Author:      "Hamza Andreas Tzortzis",
			Description: str("God, Islam and the mirage of atheism"),
			Category:    str("Philosophy"),
			Rating:      5,
			AddedBy:     admin.ID,
		},
		{
			LibraryID: library.ID,
			Title:     "Misquoting Muhammad",
			Author:    "Jonathan A.C. Brown",
			Category:  str("History"),
			Rating:    4,
			AddedBy:   admin.ID,
		},
	}
	bookIDs := []int{}
	for _, b := range books {
		book, err := store.AddBook(b)
		if err != nil {
			return fmt.Errorf("seed bookshelf: %w", err)
		}
		bookIDs = append(bookIDs, book.ID)
	}
	if _, err := store.AddCollection(models.InsertCollection{
		Name:        "Starter Shelf",
		Description: str("A first reading list for new visitors"),
		BookIDs:     bookIDs,
		CreatedBy:   admin.ID,
	}); err != nil {
		return fmt.Errorf("seed bookshelf: %w", err)
	}

	log.Info("Sample data initialized",
		zap.Int("categories", len(rootCategories)+1),
		zap.Int("articles", len(articles)),
		zap.Int("media", len(mediaItems)),
		zap.Int("questions", len(questions)))
	return nil
}
