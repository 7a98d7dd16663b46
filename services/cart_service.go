package services

import (
	"sync"

	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

// CartStore keeps session carts in memory, keyed by the session token
// carried in the cart cookie. Carts are ephemeral; nothing here touches
// the database.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]models.Cart)}
}

// Get returns a copy of the cart for the given token, so callers can't
// mutate stored state behind the lock.
func (s *CartStore) Get(token string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := make(models.Cart, len(s.carts[token]))
	for id, it := range s.carts[token] {
		cart[id] = it
	}
	return cart
}

func (s *CartStore) Put(token string, cart models.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[token] = cart
}

func (s *CartStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

// CartService handles the session cart. Adding a new item fetches the
// canonical name, price and image from the menu catalog; client-supplied
// values are never trusted.
type CartService struct {
	DB    *gorm.DB
	Store *CartStore
}

func NewCartService(db *gorm.DB, store *CartStore) *CartService {
	return &CartService{DB: db, Store: store}
}

func (s *CartService) Get(token string) models.CartView {
	return s.Store.Get(token).View()
}

// Snapshot returns the raw cart for order creation.
func (s *CartService) Snapshot(token string) models.Cart {
	return s.Store.Get(token)
}

func (s *CartService) Add(token string, menuItemID uint, quantity int) (models.CartView, error) {
	if quantity <= 0 {
		quantity = 1
	}

	cart := s.Store.Get(token)
	if it, ok := cart[menuItemID]; ok {
		it.Quantity += quantity
		cart[menuItemID] = it
	} else {
		var item models.MenuItem
		if err := s.DB.First(&item, menuItemID).Error; err != nil {
			return models.CartView{}, utils.NotFoundf("menu item not found: %d", menuItemID)
		}
		cart[menuItemID] = models.CartItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Category: item.Category,
			Quantity: quantity,
		}
	}

	s.Store.Put(token, cart)
	return cart.View(), nil
}

// UpdateQuantity sets a new quantity; zero or negative removes the item.
func (s *CartService) UpdateQuantity(token string, menuItemID uint, quantity int) (models.CartView, error) {
	cart := s.Store.Get(token)
	if _, ok := cart[menuItemID]; !ok {
		return models.CartView{}, utils.NotFoundf("cart item not found: %d", menuItemID)
	}

	if quantity <= 0 {
		delete(cart, menuItemID)
	} else {
		it := cart[menuItemID]
		it.Quantity = quantity
		cart[menuItemID] = it
	}

	s.Store.Put(token, cart)
	return cart.View(), nil
}

func (s *CartService) Remove(token string, menuItemID uint) (models.CartView, error) {
	cart := s.Store.Get(token)
	if _, ok := cart[menuItemID]; !ok {
		return models.CartView{}, utils.NotFoundf("cart item not found: %d", menuItemID)
	}

	delete(cart, menuItemID)
	s.Store.Put(token, cart)
	return cart.View(), nil
}

func (s *CartService) Clear(token string) models.CartView {
	s.Store.Delete(token)
	return models.Cart{}.View()
}
