package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipeshare/internal/config"
	"recipeshare/internal/db"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

type seedUser struct {
	Email    string
	Password string
	Name     string
	Recipes  []model.Recipe
}

var fixtures = []seedUser{
	{
		Email:    "sari@example.com",
		Password: "rahasia123",
		Name:     "Sari",
		Recipes: []model.Recipe{
			{
				Title:       "Nasi Goreng Kampung",
				Description: "Classic village-style fried rice with a deep kecap manis base.",
				Servings:    2,
				CookingTime: 20,
				Ingredients: model.IngredientList{
					{Item: "cooked rice", Quantity: "2", Unit: "cups"},
					{Item: "kecap manis", Quantity: "2", Unit: "tbsp"},
					{Item: "egg", Quantity: "2", Unit: "pcs"},
				},
				Steps: model.StepList{
					{Order: 1, Description: "Scramble the eggs in a hot wok."},
					{Order: 2, Description: "Add rice and kecap manis, fry until fragrant."},
				},
			},
			{
				Title:       "Sayur Asem",
				Description: "Sour vegetable soup with tamarind broth.",
				Servings:    4,
				CookingTime: 35,
				Ingredients: model.IngredientList{
					{Item: "tamarind paste", Quantity: "1", Unit: "tbsp"},
					{Item: "long beans", Quantity: "150", Unit: "g"},
					{Item: "corn", Quantity: "1", Unit: "ear"},
				},
				Steps: model.StepList{
					{Order: 1, Description: "Bring the tamarind broth to a boil."},
					{Order: 2, Description: "Add vegetables in order of cooking time."},
					{Order: 3, Description: "Simmer until tender."},
				},
			},
		},
	},
	{
		Email:    "budi@example.com",
		Password: "rahasia123",
		Name:     "Budi",
		Recipes: []model.Recipe{
			{
				Title:       "Mie Goreng Jawa",
				Description: "Javanese stir-fried noodles with sweet soy and cabbage.",
				Servings:    2,
				CookingTime: 25,
				Ingredients: model.IngredientList{
					{Item: "egg noodles", Quantity: "200", Unit: "g"},
					{Item: "cabbage", Quantity: "100", Unit: "g"},
					{Item: "kecap manis", Quantity: "3", Unit: "tbsp"},
				},
				Steps: model.StepList{
					{Order: 1, Description: "Boil the noodles until just tender."},
					{Order: 2, Description: "Stir-fry with cabbage and kecap manis."},
				},
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Recipe{}, &model.Favorite{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	ctx := context.Background()

	users, recipes, err := seed(ctx, userRepo, recipeRepo)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", users)
	log.Printf("  - New recipes created: %d", recipes)
}

// seed inserts fixture users and their recipes, skipping users that already
// exist so the script stays re-runnable.
func seed(ctx context.Context, userRepo repository.UserRepository, recipeRepo repository.RecipeRepository) (users int, recipes int, err error) {
	for _, fixture := range fixtures {
		existing, err := userRepo.FindByEmail(ctx, fixture.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return users, recipes, err
		}
		if existing != nil {
			log.Printf("Skipping existing user %s", fixture.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(fixture.Password), 10)
		if err != nil {
			return users, recipes, err
		}

		user := &model.User{
			Email:        fixture.Email,
			PasswordHash: string(hashed),
			Name:         fixture.Name,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return users, recipes, err
		}
		users++

		for i := range fixture.Recipes {
			recipe := fixture.Recipes[i]
			recipe.UserID = user.ID
			if err := recipeRepo.Create(ctx, &recipe); err != nil {
				return users, recipes, err
			}
			recipes++
		}
	}
	return users, recipes, nil
}
