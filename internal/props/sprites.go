package props

import (
	"winterhouse/internal/core"
	"winterhouse/internal/scene"
)

// Sprite sheets for the winter house. Frames are rows of equal visual
// width; space runes are transparent.

func houseSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "house",
		Color: core.NewRGB(0.62, 0.58, 0.55),
		Frames: []scene.Frame{{
			`                  ____________________________________________                  `,
			`                 /                                            \                 `,
			`                /                                              \                `,
			`               /                                                \               `,
			`              /                                                  \              `,
			`             /____________________________________________________\             `,
			`             |                                                    |             `,
			`             |      ______                            ______      |             `,
			`             |     |  ||  |                          |  ||  |     |             `,
			`             |     |--++--|                          |--++--|     |             `,
			`             |     |__||__|                          |__||__|     |             `,
			`             |                                                    |             `,
			`             |                                                    |             `,
			`             |                                                    |             `,
			`             |                                                    |             `,
			`             |                                                    |             `,
			`             |                                                    |             `,
			`_____________|____________________________________________________|____________`,
		}},
	}
}

func snowSheet() *scene.Sheet {
	row := ""
	for i := 0; i < 96; i++ {
		if i%7 == 3 {
			row += "*"
		} else {
			row += "."
		}
	}
	return &scene.Sheet{
		Name:   "snow",
		Color:  core.NewRGB(0.92, 0.94, 0.97),
		Frames: []scene.Frame{{row}},
	}
}

func snowmanSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "snowman",
		Color: core.NewRGB(0.88, 0.9, 0.95),
		Frames: []scene.Frame{{
			` _ `,
			`(.)`,
			`(:)`,
		}},
	}
}

func fireplaceOffSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "fireplace-off",
		Color: core.NewRGB(0.55, 0.42, 0.35),
		Frames: []scene.Frame{{
			` _________ `,
			`|  _____  |`,
			`| |     | |`,
			`| | /\/\| |`,
			`|_|_____|_|`,
		}},
	}
}

func fireplaceOnSheet() *scene.Sheet {
	frame := func(flames string) scene.Frame {
		return scene.Frame{
			` _________ `,
			`|  _____  |`,
			`| |` + flames + `| |`,
			`| | /\/\| |`,
			`|_|_____|_|`,
		}
	}
	return &scene.Sheet{
		Name:  "fireplace-on",
		Color: core.NewRGB(0.95, 0.55, 0.2),
		Frames: []scene.Frame{
			frame(` ) ( `),
			frame(`( ) )`),
			frame(` ( ( `),
			frame(`) ) (`),
			frame(` ) ) `),
		},
	}
}

func treeOffSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "tree-off",
		Color: core.NewRGB(0.15, 0.42, 0.2),
		Frames: []scene.Frame{{
			`    ^    `,
			`   /^\   `,
			`  /^^^\  `,
			` /^^^^^\ `,
			`/^^^^^^^\`,
			`   |H|   `,
		}},
	}
}

func treeOnSheet() *scene.Sheet {
	frames := []scene.Frame{
		{
			`    *    `,
			`   /o\   `,
			`  /^^o\  `,
			` /o^^^^\ `,
			`/^^^o^^o\`,
			`   |H|   `,
		},
		{
			`    *    `,
			`   /^\   `,
			`  /o^^\  `,
			` /^^o^^\ `,
			`/o^^^^o^\`,
			`   |H|   `,
		},
		{
			`    *    `,
			`   /o\   `,
			`  /^^^\  `,
			` /^o^^o\ `,
			`/^^o^^^^\`,
			`   |H|   `,
		},
		{
			`    *    `,
			`   /^\   `,
			`  /^o^\  `,
			` /^^^^o\ `,
			`/^o^^o^^\`,
			`   |H|   `,
		},
		{
			`    *    `,
			`   /o\   `,
			`  /o^^\  `,
			` /^^^o^\ `,
			`/^^^^^^o\`,
			`   |H|   `,
		},
	}
	return &scene.Sheet{
		Name:   "tree-on",
		Color:  core.NewRGB(0.25, 0.6, 0.3),
		Frames: frames,
	}
}

func presentsSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "presents",
		Color: core.NewRGB(0.8, 0.25, 0.3),
		Frames: []scene.Frame{{
			`_▄_ ▄▄`,
			`|_|[__]`,
		}},
	}
}

func stereoOffSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "stereo-off",
		Color: core.NewRGB(0.4, 0.4, 0.45),
		Frames: []scene.Frame{{
			`[o===o]`,
			`[|___|]`,
		}},
	}
}

func stereoOnSheet() *scene.Sheet {
	frame := func(bars string) scene.Frame {
		return scene.Frame{
			`[o===o]` + bars,
			`[|___|]`,
		}
	}
	return &scene.Sheet{
		Name:  "stereo-on",
		Color: core.NewRGB(0.55, 0.75, 0.85),
		Frames: []scene.Frame{
			frame(`♪`),
			frame(` `),
			frame(`♫`),
			frame(` `),
		},
	}
}

func switchOffSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "switch-off",
		Color: core.NewRGB(0.6, 0.6, 0.6),
		Frames: []scene.Frame{{
			`[ ]`,
			`[o]`,
		}},
	}
}

func switchOnSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "switch-on",
		Color: core.NewRGB(0.85, 0.85, 0.7),
		Frames: []scene.Frame{{
			`[o]`,
			`[ ]`,
		}},
	}
}

func bulbSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:   "bulb",
		Color:  core.NewRGB(0.9, 0.85, 0.6),
		Frames: []scene.Frame{{`o`}},
	}
}

func chairSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "chair",
		Color: core.NewRGB(0.5, 0.36, 0.25),
		Frames: []scene.Frame{{
			`|_`,
			`|_\`,
			`| |`,
		}},
	}
}

func manStandSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "man-stand",
		Color: core.NewRGB(0.85, 0.75, 0.6),
		Frames: []scene.Frame{{
			` O `,
			`/|\`,
			` | `,
			`/ \`,
		}},
	}
}

func manWalkSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "man-walk",
		Color: core.NewRGB(0.85, 0.75, 0.6),
		Frames: []scene.Frame{
			{
				` O `,
				`/|\`,
				` | `,
				`/ \`,
			},
			{
				` O `,
				`/|\`,
				` | `,
				` |\`,
			},
			{
				` O `,
				`/|\`,
				` | `,
				` | `,
			},
			{
				` O `,
				`/|\`,
				` | `,
				`/| `,
			},
		},
	}
}

func manSitSheet() *scene.Sheet {
	return &scene.Sheet{
		Name:  "man-sit",
		Color: core.NewRGB(0.85, 0.75, 0.6),
		Frames: []scene.Frame{{
			` O `,
			`\|/`,
			` |_`,
			` | `,
		}},
	}
}

// santaFrames is the number of flyover frames; the sleigh crosses the sky
// right to left, one step per frame.
const santaFrames = 12

// santaSheet builds the flyover strip: each frame is the full sky width with
// the sleigh overlaid one step further left. The cursor's per-frame durations
// and the marked delivery frame live in the santa builder.
func santaSheet() *scene.Sheet {
	const stripW = 90
	art := [][2]string{
		{`  \\_  __`, `  ||_  __`}, // reins alternate with the gallop
		{`>>--*__|D\_`, `>>--*__|D\_`},
		{`  //   oo  `, `  ||   oo  `},
	}

	blank := ""
	for i := 0; i < stripW; i++ {
		blank += " "
	}

	frames := make([]scene.Frame, santaFrames)
	for f := 0; f < santaFrames; f++ {
		x := stripW - 12 - f*(stripW-12)/(santaFrames-1)
		variant := f % 2

		frame := make(scene.Frame, len(art))
		for row := range art {
			line := []rune(blank)
			for i, r := range art[row][variant] {
				if x+i >= 0 && x+i < stripW {
					line[x+i] = r
				}
			}
			frame[row] = string(line)
		}
		frames[f] = frame
	}

	return &scene.Sheet{
		Name:   "santa",
		Color:  core.NewRGB(0.9, 0.3, 0.3),
		Frames: frames,
	}
}
