package document

// Default values for a freshly bootstrapped store.
const (
	DefaultStoreName       = "My Store"
	DefaultHeroTitle       = "Welcome to our online store"
	DefaultHeroDescription = "Discover our featured products with great offers and fast delivery."
	DefaultCurrency        = "DA"
	DefaultLanguage        = "ar"

	DefaultAdminName = "Store Admin"
	DefaultAdminRole = "administrator"
)

func defaultSettings() Settings {
	return Settings{
		StoreName:       DefaultStoreName,
		HeroTitle:       DefaultHeroTitle,
		HeroDescription: DefaultHeroDescription,
		Currency:        DefaultCurrency,
		Language:        DefaultLanguage,
		Active:          true,
		Theme: Theme{
			Primary:    "#2563eb",
			Secondary:  "#1e40af",
			Accent:     "#f59e0b",
			Background: "#ffffff",
			Text:       "#111827",
		},
	}
}

func defaultUser() User {
	return User{
		Name: DefaultAdminName,
		Role: DefaultAdminRole,
	}
}

// Default builds the bootstrap document. The password hash is generated by
// the caller exactly once, on very first bootstrap; Normalize never touches
// it afterwards.
func Default(passwordHash []byte) *Document {
	user := defaultUser()
	user.PasswordHash = passwordHash

	return &Document{
		Settings:      defaultSettings(),
		User:          user,
		Products:      []Product{},
		Orders:        []Order{},
		Analytics:     Analytics{Monthly: []MonthlyStat{}},
		NextProductID: 1,
	}
}
