package tick

import (
	"farmerbot/internal/domain/farm"
	"farmerbot/internal/domain/farmer"
)

type Request struct {
	Bot farm.BotState
}

type Response struct {
	Decision farmer.Decision
}
