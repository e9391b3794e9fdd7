package seed

import "catalog/internal/models"

// Product is one entry of the seed dataset.
type Product struct {
	Title       string
	Price       float64
	Description string
	Slug        string
	Stock       int
	Sizes       []string
	Gender      models.Gender
	Tags        []string
	Images      []string
}

// Products returns a fresh copy of the seed dataset.
func Products() []Product {
	return []Product{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Price:       75,
			Description: "Introducing the Tesla Chill Collection. The Men's Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior for comfort in any season.",
			Slug:        "mens-chill-crew-neck-sweatshirt",
			Stock:       7,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Price:       200,
			Description: "The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons.",
			Slug:        "men-quilted-shirt-jacket",
			Stock:       5,
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"jacket"},
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
			Price:       130,
			Description: "Introducing the Tesla Raven Collection. The Men's Raven Lightweight Zip Up Bomber has a premium, modern silhouette made from a sustainable bamboo cotton blend.",
			Slug:        "men-raven-lightweight-zip-up-bomber-jacket",
			Stock:       10,
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"shirt"},
			Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Long Sleeve Tee",
			Price:       45,
			Description: "Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Men's Turbine Long Sleeve Tee features a subtle, water-based T logo on the left chest.",
			Slug:        "men-turbine-long-sleeve-tee",
			Stock:       50,
			Sizes:       []string{"XS", "S", "M", "L"},
			Gender:      models.GenderMen,
			Tags:        []string{"shirt"},
			Images:      []string{"1740280-00-A_0_2000.jpg", "1740280-00-A_1.jpg"},
		},
		{
			Title:       "Men's Turbine Short Sleeve Tee",
			Price:       40,
			Description: "Introducing the Tesla Turbine Collection. Designed for style, comfort and everyday lifestyle, the Men's Turbine Short Sleeve Tee features a subtle, water-based Tesla wordmark across the chest.",
			Slug:        "men-turbine-short-sleeve-tee",
			Stock:       50,
			Sizes:       []string{"M", "L", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"shirt"},
			Images:      []string{"1741416-00-A_0_2000.jpg", "1741416-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Price:       225,
			Description: "The Women's Cropped Puffer Jacket features a uniquely cropped silhouette for the perfect, modern style while on the go during the cozy season ahead.",
			Slug:        "women-cropped-puffer-jacket",
			Stock:       85,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderWomen,
			Tags:        []string{"hoodie"},
			Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
		},
		{
			Title:       "Women's Chill Half Zip Cropped Hoodie",
			Price:       130,
			Description: "Introducing the Tesla Chill Collection. The Women's Chill Half Zip Cropped Hoodie has a premium, soft fleece exterior and cropped silhouette for comfort in everyday lifestyle.",
			Slug:        "women-chill-half-zip-cropped-hoodie",
			Stock:       10,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderWomen,
			Tags:        []string{"hoodie"},
			Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cybertruck Long Sleeve Tee",
			Price:       30,
			Description: "Designed for fit, comfort and style, the Tesla Kids Cybertruck Graffiti Long Sleeve Tee features a water-based Cybertruck graffiti wordmark across the chest.",
			Slug:        "kids-cybertruck-long-sleeve-tee",
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderKids,
			Tags:        []string{"shirt"},
			Images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_3.jpg"},
		},
		{
			Title:       "Kids Racing Stripe Tee",
			Price:       30,
			Description: "The Kids Racing Stripe Tee is made from 100% peruvian cotton and features a racing stripe design and the Tesla wordmark.",
			Slug:        "kids-racing-stripe-tee",
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderKids,
			Tags:        []string{"shirt"},
			Images:      []string{"1742692-00-A_0_2000.jpg", "1742692-00-A_1.jpg"},
		},
		{
			Title:       "Tesla Logo Beanie",
			Price:       35,
			Description: "The Tesla Logo Beanie is fit for winter and features a cozy, knit construction with a subtle, tonal Tesla T logo embroidered on the front.",
			Slug:        "tesla-logo-beanie",
			Stock:       10,
			Sizes:       []string{},
			Gender:      models.GenderUnisex,
			Tags:        []string{"hats"},
			Images:      []string{"1740417-00-A_0_2000.jpg", "1740417-00-A_1.jpg"},
		},
	}
}
