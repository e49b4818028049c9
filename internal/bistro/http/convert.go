package http

import (
	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
)

func toUser(u domain.User) bistrosdk.User {
	return bistrosdk.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toMenuItem(m domain.MenuItem) bistrosdk.MenuItem {
	return bistrosdk.MenuItem{
		ID:       m.ID,
		Name:     m.Name,
		Recipe:   m.Recipe,
		Image:    m.Image,
		Category: m.Category,
		Price:    m.Price,
	}
}

func fromMenuItemInput(in bistrosdk.MenuItemInput) domain.MenuItem {
	return domain.MenuItem{
		Name:     in.Name,
		Recipe:   in.Recipe,
		Image:    in.Image,
		Category: in.Category,
		Price:    in.Price,
	}
}

func toReview(r domain.Review) bistrosdk.Review {
	return bistrosdk.Review{
		ID:        r.ID,
		Name:      r.Name,
		Details:   r.Details,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
	}
}

func toCartItem(c domain.CartItem) bistrosdk.CartItem {
	return bistrosdk.CartItem{
		ID:        c.ID,
		MenuID:    c.MenuID,
		Email:     c.Email,
		Name:      c.Name,
		Image:     c.Image,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
	}
}

func toPayment(p domain.Payment) bistrosdk.Payment {
	return bistrosdk.Payment{
		ID:            p.ID,
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		CartIDs:       p.CartIDs,
		MenuItemIDs:   p.MenuItemIDs,
		CreatedAt:     p.CreatedAt,
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
