package models

import "time"

// PDF представляет документ, хранящийся на сервере
type PDF struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ID            string    `json:"id"`              // ID UUID документа
	Name          string    `json:"name"`            // Name отображаемое имя (заголовок вкладки)
	Digest        string    `json:"digest"`          // Digest BLAKE2b-256 содержимого в hex
	Content       []byte    `json:"-"`               // Content байты PDF, отдаются отдельным запросом
	CurrentPage   int       `json:"current_page"`    // CurrentPage последняя страница, на которой был пользователь
	NumberOfPages int       `json:"number_of_pages"` // NumberOfPages количество страниц по данным pdfcpu
}

// Progress returns reading progress in percent, 0 when the page count is unknown
func (p *PDF) Progress() int {
	if p.NumberOfPages <= 0 {
		return 0
	}
	page := p.CurrentPage
	if page < 0 {
		page = 0
	}
	if page > p.NumberOfPages {
		page = p.NumberOfPages
	}
	return (100*page + p.NumberOfPages/2) / p.NumberOfPages
}
