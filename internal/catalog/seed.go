package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/therajusah/Ecommerce-app/internal/domain"
)

// Default returns the demo catalog the app ships with.
func Default() *Catalog {
	return New(demoProducts(), []string{CategoryAll, "Electronics", "Clothing", "Sports", "Accessories"})
}

func demoProduct(id int64, name, description string, price, originalPrice int64, discount int, image, category string, rating float64, inStock bool) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          name,
		Description:   description,
		Price:         decimal.NewFromInt(price),
		OriginalPrice: decimal.NewNullDecimal(decimal.NewFromInt(originalPrice)),
		Discount:      discount,
		ImageURL:      image,
		Category:      category,
		Rating:        rating,
		InStock:       inStock,
	}
}

func demoProducts() []domain.Product {
	return []domain.Product{
		demoProduct(1, "Premium Wireless Headphones",
			"High-quality wireless headphones with noise cancellation and premium sound quality. Perfect for music lovers and professionals.",
			2999, 3999, 25, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
			"Electronics", 4.5, true),
		demoProduct(2, "Smart Fitness Watch",
			"Advanced fitness tracking watch with heart rate monitor, GPS, and smartphone connectivity. Track your health 24/7.",
			4499, 5999, 25, "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
			"Electronics", 4.3, true),
		demoProduct(3, "Cotton Casual T-Shirt",
			"Comfortable 100% cotton t-shirt perfect for casual wear. Available in multiple colors and sizes.",
			599, 799, 25, "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=300&fit=crop",
			"Clothing", 4.2, true),
		demoProduct(4, "Gaming Laptop",
			"High-performance gaming laptop with powerful graphics card and fast processor. Perfect for gaming and professional work.",
			75999, 89999, 15, "https://images.unsplash.com/photo-1525373612132-b3e820b87cea?w=300&h=300&fit=crop",
			"Electronics", 4.6, true),
		demoProduct(5, "Bluetooth Speaker",
			"Portable wireless speaker with excellent sound quality and long battery life. Perfect for outdoor activities.",
			1799, 2299, 22, "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop",
			"Electronics", 4.4, true),
		demoProduct(6, "Running Shoes",
			"Comfortable running shoes with excellent cushioning and support. Perfect for daily running and sports activities.",
			3299, 4199, 21, "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=300&fit=crop",
			"Sports", 4.3, true),
		demoProduct(7, "Backpack",
			"Durable and spacious backpack perfect for travel, work, or school. Multiple compartments for organization.",
			1599, 1999, 20, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop",
			"Accessories", 4.1, true),
		demoProduct(8, "Smartphone",
			"Latest smartphone with advanced camera system and fast performance. Stay connected with cutting-edge technology.",
			24999, 29999, 17, "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop",
			"Electronics", 4.5, false),
	}
}
