package wimage

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}

// Window image for drawing. Drawing happens on an RGBA image; the pixels are converted to the server byte order (BGRA) when put.
type WImage struct {
	opt *Options
	img *image.RGBA
}

func NewWImage(opt *Options) *WImage {
	return &WImage{opt: opt, img: image.NewRGBA(image.Rect(0, 0, 1, 1))}
}

func (wi *WImage) Close() error {
	wi.img = &image.RGBA{}
	return nil
}

func (wi *WImage) Image() draw.Image {
	return wi.img
}

func (wi *WImage) Resize(r image.Rectangle) error {
	if r.Empty() {
		return fmt.Errorf("wimage: empty rect: %v", r)
	}
	wi.img = image.NewRGBA(r)
	return nil
}

//----------

func (wi *WImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	chunks, err := chunkRects(r)
	if err != nil {
		return err
	}
	wg := sync.WaitGroup{}
	for _, c := range chunks {
		wg.Add(1)
		go func(c image.Rectangle) {
			defer wg.Done()
			data := bgraData(wi.img, c)
			_ = xproto.PutImage( // unchecked (errors arrive in the event loop)
				wi.opt.Conn,
				xproto.ImageFormatZPixmap,
				xproto.Drawable(wi.opt.Window),
				wi.opt.GCtx,
				uint16(c.Dx()), uint16(c.Dy()),
				int16(c.Min.X), int16(c.Min.Y),
				0, // left pad, must be 0 for ZPixmap format
				wi.opt.ScreenInfo.RootDepth,
				data)
		}(c)
	}
	wg.Wait()
	return nil
}

//----------

const (
	// X max request length = (2^16)*4 bytes, the image is sent in chunks
	maxReqSize    = (1 << 16) * 4
	putImgReqSize = 28 // request header
)

// Splits r into row bands that fit in one request.
func chunkRects(r image.Rectangle) ([]image.Rectangle, error) {
	maxSize := (maxReqSize - putImgReqSize) / 4 // pixels
	if r.Dx() > maxSize {
		return nil, fmt.Errorf("wimage: dx>max, %v>%v", r.Dx(), maxSize)
	}
	ysize := maxSize / r.Dx()
	u := []image.Rectangle{}
	for y := r.Min.Y; y < r.Max.Y; y += ysize {
		y2 := min(y+ysize, r.Max.Y)
		u = append(u, image.Rect(r.Min.X, y, r.Max.X, y2))
	}
	return u, nil
}

// Pixels of r in BGRA order.
func bgraData(img *image.RGBA, r image.Rectangle) []byte {
	w := r.Dx()
	data := make([]byte, w*r.Dy()*4)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y - r.Min.Y) * w * 4
		j := img.PixOffset(r.Min.X, y)
		row := data[i : i+w*4]
		copy(row, img.Pix[j:j+w*4])
		for k := 0; k < len(row); k += 4 {
			row[k], row[k+2] = row[k+2], row[k]
		}
	}
	return data
}
