package ui

import "raisingsims/internal/pet"

// Art holds the picture drawn for each display state, keyed by asset name
var Art = map[string]string{
	"pet_awake": `
    /\_/\
   ( o.o )
    > ^ <
`,
	"pet_sleeping": `
    /\_/\   z
   ( -.- ) z
    > ^ <
`,
	"pet_eating": `
    /\_/\
   ( ^o^ ) 🍖
    > ^ <  *nom*
`,
	"pet_drinking": `
    /\_/\
   ( ^.^ ) 💧
    > ^ <  *slurp*
`,
	"pet_happy": `
    /\_/\    🎾
   ( ^ω^ )
    > ^ <  *boing*
`,
	"pet_hungry": `
    /\_/\
   ( ;o; )  🍽️?
    > ^ <
`,
	"pet_thirsty": `
    /\_/\
   ( >o< )  💧?
    > ^ <
`,
	"pet_tired": `
    /\_/\
   ( =_= )  ...
    > ^ <
`,
	"pet_dead": `
    /\_/\
   ( x.x )
    > ^ <
`,
}

// ArtFor returns the picture for a display state, falling back to awake
func ArtFor(d pet.DisplayState) string {
	if art, ok := Art[d.AssetName()]; ok {
		return art
	}
	return Art[pet.DisplayAwake.AssetName()]
}
