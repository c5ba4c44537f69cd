package store

// Bootstrap data used when the backing collection is empty (first run) or a
// persisted document cannot be decoded.

func seedAccounts() []Account {
	return []Account{
		{
			ID:         "1",
			Email:      "admin@ecommerce.com",
			Password:   "admin123",
			Name:       "Sarah Johnson",
			ProfilePic: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop",
			Role:       RoleSuperAdmin,
			JoinDate:   "2023-01-15",
		},
		{
			ID:         "2",
			Email:      "manager@ecommerce.com",
			Password:   "manager123",
			Name:       "Michael Chen",
			ProfilePic: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			Role:       RoleManager,
			JoinDate:   "2023-03-20",
		},
	}
}

func seedProducts() []Product {
	return []Product{
		{ID: "1", Name: "Wireless Headphones", Category: "Electronics", Price: 129.99, Stock: 45, Rating: 4.6, Reviews: 482, Sales: 320,
			Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop"},
		{ID: "2", Name: "Smart Watch Pro", Category: "Electronics", Price: 249.99, Stock: 30, Rating: 4.7, Reviews: 615, Sales: 540,
			Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop"},
		{ID: "3", Name: "Running Shoes", Category: "Footwear", Price: 89.99, Stock: 120, Rating: 4.4, Reviews: 327, Sales: 410,
			Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop"},
		{ID: "4", Name: "Leather Wallet", Category: "Accessories", Price: 39.99, Stock: 85, Rating: 4.2, Reviews: 98, Sales: 150,
			Image: "https://images.unsplash.com/photo-1627123424574-724758594e93?w=400&h=300&fit=crop"},
		{ID: "5", Name: "Espresso Machine", Category: "Home", Price: 199.50, Stock: 25, Rating: 4.8, Reviews: 204, Sales: 230,
			Image: "https://images.unsplash.com/photo-1510017803434-a899398421b3?w=400&h=300&fit=crop"},
		{ID: "6", Name: "Yoga Mat", Category: "Sports", Price: 24.99, Stock: 150, Rating: 4.3, Reviews: 156, Sales: 380,
			Image: "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400&h=300&fit=crop"},
		{ID: "7", Name: "Denim Jacket", Category: "Clothing", Price: 79.99, Stock: 60, Rating: 4.1, Reviews: 88, Sales: 195,
			Image: "https://images.unsplash.com/photo-1551537482-f2075a1d41f2?w=400&h=300&fit=crop"},
		{ID: "8", Name: "Bluetooth Speaker", Category: "Electronics", Price: 59.99, Stock: 40, Rating: 4.5, Reviews: 389, Sales: 470,
			Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=300&fit=crop"},
		{ID: "9", Name: "Trail Sneakers", Category: "Footwear", Price: 119.99, Stock: 35, Rating: 4.6, Reviews: 298, Sales: 510,
			Image: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=300&fit=crop"},
		{ID: "10", Name: "Table Lamp", Category: "Home", Price: 45.00, Stock: 95, Sales: 120,
			Image: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400&h=300&fit=crop"},
		{ID: "11", Name: "Baseball Cap", Category: "Accessories", Price: 19.99, Stock: 200, Rating: 4.0, Reviews: 73, Sales: 260,
			Image: "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=400&h=300&fit=crop"},
		{ID: "12", Name: "Winter Parka", Category: "Clothing", Price: 159.00, Stock: 20, Rating: 4.7, Reviews: 211, Sales: 340,
			Image: "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=400&h=300&fit=crop"},
	}
}
