package http

import (
	"time"

	ordercontracts "github.com/light-bringer/order-management-service/internal/app/order/contracts"
	productcontracts "github.com/light-bringer/order-management-service/internal/app/product/contracts"
)

type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unitPrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type orderItemResponse struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"orderNumber"`
	Date         time.Time           `json:"date"`
	Status       string              `json:"status"`
	Products     []orderItemResponse `json:"products"`
	ProductCount int                 `json:"productCount"`
	FinalPrice   float64             `json:"finalPrice"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func toProductResponse(dto *productcontracts.ProductDTO) productResponse {
	return productResponse{
		ID:        dto.ProductID,
		Name:      dto.Name,
		UnitPrice: dto.UnitPrice,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

func toProductResponses(dtos []*productcontracts.ProductDTO) []productResponse {
	out := make([]productResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toProductResponse(dto))
	}
	return out
}

func toOrderResponse(dto *ordercontracts.OrderDTO) orderResponse {
	items := make([]orderItemResponse, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, orderItemResponse{
			ID:         item.ItemID,
			ProductID:  item.ProductID,
			Name:       item.ProductName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return orderResponse{
		ID:           dto.OrderID,
		OrderNumber:  dto.OrderNumber,
		Date:         dto.Date,
		Status:       dto.Status,
		Products:     items,
		ProductCount: dto.ProductCount,
		FinalPrice:   dto.FinalPrice,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
}

func toOrderResponses(dtos []*ordercontracts.OrderDTO) []orderResponse {
	out := make([]orderResponse, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, toOrderResponse(dto))
	}
	return out
}
