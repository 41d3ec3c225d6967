// Command homehub-gif records an animated GIF walkthrough of the
// dashboard with a headless browser: home screen, each room's detail
// page and back again, sized for the 1024x600 wall display.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
)

const (
	screenWidth   = 1024
	screenHeight  = 600
	frameDuration = 80 // hundredths of a second
)

type recorder struct {
	page   *rod.Page
	frames []*image.Paletted
}

func (rec *recorder) capture(n int) {
	for i := 0; i < n; i++ {
		buf := rec.page.MustScreenshot()
		img, err := png.Decode(bytes.NewReader(buf))
		if err != nil {
			log.Fatalln("Couldn't decode screenshot:", err)
		}
		frame := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(frame, img.Bounds(), img, image.Point{})
		rec.frames = append(rec.frames, frame)
		time.Sleep(300 * time.Millisecond)
	}
}

func (rec *recorder) click(selector string) {
	rec.page.MustElement(selector).MustClick()
	rec.page.MustWaitLoad()
	time.Sleep(time.Second)
}

func (rec *recorder) save(path string) error {
	out := &gif.GIF{}
	for _, frame := range rec.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, frameDuration)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}

func main() {
	url := flag.String("url", "http://localhost:5000", "dashboard url")
	output := flag.String("o", "HomeHUB_demo.gif", "output file")
	flag.Parse()

	log.Println("Starting demo recording...")
	browser := rod.New().MustConnect()
	defer browser.MustClose()

	page := browser.MustPage(*url)
	page.MustSetViewport(screenWidth, screenHeight, 1, false)
	page.MustWaitLoad()
	// zoom out so all tiles fit on screen
	page.MustEval(`() => { document.body.style.zoom = '0.8' }`)
	time.Sleep(2 * time.Second)

	rec := &recorder{page: page}

	log.Println("Capturing main dashboard...")
	rec.capture(3)

	log.Println("Capturing Bedroom details...")
	rec.click(`a[href="/room/Bedroom"]`)
	rec.capture(4)

	log.Println("Returning to dashboard...")
	rec.click(`.back-btn`)
	rec.capture(2)

	log.Println("Capturing Living Room details...")
	rec.click(`a[href="/room/Living%20Room"]`)
	rec.capture(4)

	log.Println("Final dashboard view...")
	rec.click(`.back-btn`)
	rec.capture(3)

	if err := rec.save(*output); err != nil {
		log.Fatalln("Couldn't save gif:", err)
	}
	log.Printf("Saved %d frames to %s", len(rec.frames), *output)
}
