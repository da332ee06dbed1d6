package domain

import "time"

type OfferStatus string

const (
	OfferStatusActive OfferStatus = "ACTIVE"
	OfferStatusPaused OfferStatus = "PAUSED"
)

type Channel string

const (
	ChannelFacebook Channel = "facebook"
	ChannelYouTube  Channel = "youtube"
	ChannelTikTok   Channel = "tiktok"
)

// Offer é a campanha/produto acompanhado. Ela é dona do seu ThresholdSet.
type Offer struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Status     OfferStatus  `json:"status"`
	Thresholds ThresholdSet `json:"thresholds"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// NewOffer cria uma oferta ativa com os thresholds padrão do sistema
func NewOffer(id, name string, now time.Time) *Offer {
	return &Offer{
		ID:         id,
		Name:       name,
		Status:     OfferStatusActive,
		Thresholds: DefaultThresholds(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ReplaceThresholds substitui a configuração inteira; não há edição por campo
func (o *Offer) ReplaceThresholds(thresholds ThresholdSet, now time.Time) {
	o.Thresholds = thresholds
	o.UpdatedAt = now
}

// Creative é uma variação de anúncio pertencente a uma oferta
type Creative struct {
	ID      string  `json:"id"`
	OfferID string  `json:"offer_id"`
	Name    string  `json:"name"`
	Channel Channel `json:"channel"`
}
