package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Input  = donburi.NewTag().SetName("Input")
)
