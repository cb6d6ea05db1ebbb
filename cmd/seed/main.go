package main // Seeds the database with an admin account and the starting menu.

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/lunabrew/restaurant-backend/internal/config"
	"github.com/lunabrew/restaurant-backend/internal/database"
	"github.com/lunabrew/restaurant-backend/internal/model"
	"github.com/lunabrew/restaurant-backend/internal/repository"
)

// tl converts a lira amount to cents for the price columns.
func tl(amount uint32) *uint32 {
	cents := amount * 100
	return &cents
}

type seedItem struct {
	name, description          string
	single, medium, large      *uint32
	popular, vegetarian, vegan bool
	prepMinutes, order         int
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	menu := repository.NewMenuRepo(db)

	if _, err := users.Create(ctx, "LunaBrew Admin", "admin@lunabrew.com", "admin123", "admin", cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			log.Println("admin account already present, skipping")
		} else {
			log.Fatalf("seed admin: %v", err)
		}
	} else {
		log.Println("admin account created (admin@lunabrew.com / admin123)")
	}

	categories := []model.MenuCategory{
		{Name: "Kahveler", Description: "Özenle hazırlanmış kahve çeşitlerimiz", Icon: "fas fa-coffee", SortOrder: 1, IsActive: true},
		{Name: "Kahve İçermeyen İçecekler", Description: "Çay, sıcak çikolata ve diğer içecekler", Icon: "fas fa-mug-hot", SortOrder: 2, IsActive: true},
		{Name: "Ana Yemekler", Description: "Doyurucu ana yemek seçeneklerimiz", Icon: "fas fa-utensils", SortOrder: 3, IsActive: true},
		{Name: "Atıştırmalıklar", Description: "Hafif atıştırmalık ve aperatifler", Icon: "fas fa-cookie-bite", SortOrder: 4, IsActive: true},
	}

	items := map[string][]seedItem{
		"Kahveler": {
			{name: "Espresso", description: "Tutkunun mükemmellikle buluşması", medium: tl(110), large: tl(150), popular: true, prepMinutes: 5, order: 1},
			{name: "Cappuccino", description: "Yoğun espresso ile köpüklü mükemmelliğin buluşması", medium: tl(150), large: tl(180), popular: true, prepMinutes: 8, order: 2},
			{name: "Latte", description: "Pürüzsüz espresso ve süt köpüğünün eşsiz uyumu", medium: tl(160), large: tl(200), popular: true, prepMinutes: 8, order: 3},
			{name: "Americano", description: "Saf kahve keyfinin özü", medium: tl(100), large: tl(120), prepMinutes: 5, order: 4},
			{name: "Mocha", description: "Çikolata ve espressonun mükemmel dengesi", medium: tl(160), large: tl(200), prepMinutes: 10, order: 5},
			{name: "Caramel Latte", description: "Pürüzsüz espresso ve altın karamelin eşsiz uyumu", medium: tl(160), large: tl(200), prepMinutes: 10, order: 6},
			{name: "Türk Kahvesi", description: "Geleneksel Türk kahvesi, özel pişirme tekniğiyle", single: tl(75), prepMinutes: 15, order: 7},
		},
		"Kahve İçermeyen İçecekler": {
			{name: "Elma Çayı", description: "Kendi bahçemizden toplanmış organik elmaların eşsiz aroması", medium: tl(120), large: tl(150), vegetarian: true, vegan: true, prepMinutes: 5, order: 1},
			{name: "Sıcak Çikolata", description: "En kaliteli kakao ve kremsi sütle hazırlanmış", medium: tl(150), large: tl(170), vegetarian: true, prepMinutes: 8, order: 2},
			{name: "Limonata", description: "Taze limonların canlı sitrus aromalarıyla dolu, ferahlatıcı içecek", medium: tl(150), large: tl(170), vegetarian: true, vegan: true, prepMinutes: 5, order: 3},
			{name: "Meyveli Smoothie", description: "Olgun meyvelerin doğal tatlılığıyla patlayan, sağlıklı karışım", medium: tl(170), large: tl(200), vegetarian: true, vegan: true, prepMinutes: 10, order: 4},
		},
		"Ana Yemekler": {
			{name: "Tavuklu Burger", description: "Baharatla marine edilmiş ızgara tavuk eti, taze marul, domates ve özel sosla", single: tl(350), prepMinutes: 20, order: 1},
			{name: "Sebzeli Pizza", description: "Taze biber, mantar, domates ve mozarella ile hazırlanmış", single: tl(375), vegetarian: true, prepMinutes: 25, order: 2},
			{name: "Tavuklu Pizza", description: "Baharatlı tavuk parçaları, eriyen kaşar peyniri ve mevsim sebzeleri", single: tl(350), prepMinutes: 25, order: 3},
			{name: "Tavuklu Sandwich", description: "Izgara tavuk göğsü, çıtır ekmek, marul, domates ve kremsi mayonez", single: tl(325), prepMinutes: 15, order: 4},
			{name: "Vejeteryan Köfte Tabağı", description: "Ev yapımı vejetaryen köfteler, yoğurt sosu ve taze otlarla", single: tl(400), vegetarian: true, prepMinutes: 20, order: 5},
		},
		"Atıştırmalıklar": {
			{name: "Peynirli Poğaça", description: "Yumuşacık hamur içinde eriyen kaşar peyniri", single: tl(50), vegetarian: true, prepMinutes: 5, order: 1},
			{name: "Sigara Böreği", description: "Peynir veya patates dolgulu, çıtır yufkada servis", single: tl(200), vegetarian: true, prepMinutes: 15, order: 2},
			{name: "Zeytinli Kısır", description: "Bulgur, zeytin, maydanoz ve baharatlarla hazırlanmış sağlıklı seçenek", single: tl(275), vegetarian: true, vegan: true, prepMinutes: 10, order: 3},
			{name: "Çikolatalı Kurabiye", description: "Yumuşak ve çikolata dolu, kahvenin yanında mükemmel tatlı", single: tl(225), vegetarian: true, prepMinutes: 5, order: 4},
		},
	}

	for i := range categories {
		cat := &categories[i]
		if err := menu.CreateCategory(ctx, cat); err != nil {
			log.Fatalf("seed category %q: %v", cat.Name, err)
		}
		for _, si := range items[cat.Name] {
			item := model.MenuItem{
				CategoryID:       cat.ID,
				Name:             si.name,
				Description:      si.description,
				PriceSingleCents: si.single,
				PriceMediumCents: si.medium,
				PriceLargeCents:  si.large,
				IsAvailable:      true,
				IsPopular:        si.popular,
				IsVegetarian:     si.vegetarian,
				IsVegan:          si.vegan,
				SortOrder:        si.order,
				PrepMinutes:      si.prepMinutes,
			}
			if err := menu.CreateItem(ctx, &item); err != nil {
				log.Fatalf("seed item %q: %v", si.name, err)
			}
		}
		log.Printf("category %q seeded with %d items", cat.Name, len(items[cat.Name]))
	}

	log.Println("seed complete")
}
