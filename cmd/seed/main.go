package main

import (
	"log"
	"time"

	"medialabel/internal/database"
	"medialabel/internal/domain/asset"
	"medialabel/internal/domain/auth"
	"medialabel/internal/domain/label"
	"medialabel/internal/domain/region"
	"medialabel/internal/domain/segment"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local SQLite database with a demo owner, one audio and one image
// asset, a small label vocabulary and a few annotations.
func main() {
	db, err := database.Connect("medialabel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&asset.Asset{},
		&label.Label{},
		&segment.Segment{},
		&region.Region{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	owner := auth.User{
		Email:        "demo@medialabel.local",
		Name:         "Demo Annotator",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Where(auth.User{Email: owner.Email}).FirstOrCreate(&owner).Error; err != nil {
		log.Fatal("seed user failed:", err)
	}

	duration := 120.5
	audio := asset.Asset{
		OwnerID:      owner.ID,
		Kind:         asset.KindAudio,
		OriginalName: "interview_01.wav",
		StoredName:   "seed_interview_01.wav",
		FilePath:     "seed/interview_01.wav",
		FileURL:      "/static/uploads/seed/interview_01.wav",
		MimeType:     "audio/wav",
		Size:         5_242_880,
		Duration:     &duration,
		Title:        "Interview take 1",
		Status:       asset.StatusDraft,
		UploadedAt:   time.Now(),
	}
	if err := db.Where(asset.Asset{StoredName: audio.StoredName}).FirstOrCreate(&audio).Error; err != nil {
		log.Fatal("seed audio asset failed:", err)
	}

	w, h := 800, 600
	image := asset.Asset{
		OwnerID:      owner.ID,
		Kind:         asset.KindImage,
		OriginalName: "street_scene.png",
		StoredName:   "seed_street_scene.png",
		FilePath:     "seed/street_scene.png",
		FileURL:      "/static/uploads/seed/street_scene.png",
		MimeType:     "image/png",
		Size:         1_048_576,
		Width:        &w,
		Height:       &h,
		Title:        "Street scene",
		Status:       asset.StatusDraft,
		UploadedAt:   time.Now(),
	}
	if err := db.Where(asset.Asset{StoredName: image.StoredName}).FirstOrCreate(&image).Error; err != nil {
		log.Fatal("seed image asset failed:", err)
	}

	speech := label.Label{AssetID: audio.ID, Name: "Speech", Color: "#ef4444", IsActive: true, CreatedAt: time.Now()}
	noise := label.Label{AssetID: audio.ID, Name: "Noise", Color: "#3b82f6", IsActive: true, CreatedAt: time.Now()}
	object := label.Label{AssetID: image.ID, Name: "Object", Color: "#22c55e", IsActive: true, CreatedAt: time.Now()}
	for _, l := range []*label.Label{&speech, &noise, &object} {
		if err := db.Where(label.Label{AssetID: l.AssetID, Name: l.Name}).FirstOrCreate(l).Error; err != nil {
			log.Fatal("seed label failed:", err)
		}
	}

	seg := segment.Segment{
		AssetID:   audio.ID,
		LabelID:   speech.ID,
		StartTime: 2.000,
		EndTime:   5.250,
		Duration:  3.250,
		Notes:     "greeting",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Where(segment.Segment{AssetID: seg.AssetID, LabelID: seg.LabelID, StartTime: seg.StartTime}).
		FirstOrCreate(&seg).Error; err != nil {
		log.Fatal("seed segment failed:", err)
	}

	rg := region.Region{
		AssetID:   image.ID,
		LabelID:   object.ID,
		X:         10,
		Y:         10,
		Width:     100,
		Height:    50,
		Notes:     "parked car",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Where(region.Region{AssetID: rg.AssetID, LabelID: rg.LabelID, X: rg.X, Y: rg.Y}).
		FirstOrCreate(&rg).Error; err != nil {
		log.Fatal("seed region failed:", err)
	}

	log.Println("Seed complete: owner", owner.Email, "assets", audio.ID, image.ID)
}
