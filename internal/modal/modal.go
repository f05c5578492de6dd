// Package modal manages the two overlay surfaces of the page: the video embed modal and the info modal.
//
// Modal visibility lives only in the display style of the modal elements.
package modal

import (
	"fmt"
	"net/url"

	"github.com/jonathan/portfolio/internal/dom"
	"go.uber.org/zap"
)

// Element ids of the modal contract.
const (
	VideoModalID = "videoModal"
	VideoFrameID = "videoFrame"
	InfoModalID  = "infoModal"
)

const (
	displayOpen   = "flex"
	displayClosed = "none"
)

// EmbedURL returns the autoplaying embed URL for a video id.
func EmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", url.PathEscape(videoID))
}

// Controller opens and closes the modals of one page.
type Controller struct {
	doc    *dom.Document
	logger *zap.Logger

	videoModal dom.Element
	videoFrame dom.Element
	infoModal  dom.Element
	hasVideo   bool
	hasInfo    bool
}

// New creates a Controller for doc. Call Init before use.
func New(doc *dom.Document, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{doc: doc, logger: logger}
}

// Init resolves the modal elements and binds backdrop and close-button dismissal.
// A page without the modal markup is left alone; later calls become no-ops.
func (c *Controller) Init() {
	c.doc.Update(func() {
		var frameOK bool
		c.videoModal, c.hasVideo = c.doc.ByID(VideoModalID)
		c.videoFrame, frameOK = c.doc.ByID(VideoFrameID)
		c.hasVideo = c.hasVideo && frameOK
		c.infoModal, c.hasInfo = c.doc.ByID(InfoModalID)

		if c.hasVideo {
			c.videoModal.SetStyle("display", displayClosed)
			c.videoFrame.SetAttr("src", "")
			for _, btn := range c.videoModal.FindAll(".close") {
				c.doc.On(btn, dom.Click, func(*dom.Event) { c.CloseVideo() })
			}
		}
		if c.hasInfo {
			c.infoModal.SetStyle("display", displayClosed)
			for _, btn := range c.infoModal.FindAll(".close") {
				c.doc.On(btn, dom.Click, func(*dom.Event) { c.CloseInfoModal() })
			}
		}
	})

	c.doc.OnWindow(dom.Click, func(ev *dom.Event) {
		if c.hasVideo && ev.Target.Is(c.videoModal) {
			c.CloseVideo()
		}
		if c.hasInfo && ev.Target.Is(c.infoModal) {
			c.CloseInfoModal()
		}
	})

	c.logger.Debug("Modals initialized",
		zap.Bool("video", c.hasVideo),
		zap.Bool("info", c.hasInfo))
}

// OpenVideo shows the video modal playing videoID.
func (c *Controller) OpenVideo(videoID string) {
	if !c.hasVideo {
		return
	}
	c.doc.Update(func() {
		c.videoModal.SetStyle("display", displayOpen)
		c.videoFrame.SetAttr("src", EmbedURL(videoID))
	})
	c.logger.Debug("Video modal opened", zap.String("video_id", videoID))
}

// CloseVideo hides the video modal and clears the frame source, which stops playback.
func (c *Controller) CloseVideo() {
	if !c.hasVideo {
		return
	}
	c.doc.Update(func() {
		c.videoModal.SetStyle("display", displayClosed)
		c.videoFrame.SetAttr("src", "")
	})
}

// OpenInfoModal shows the info modal.
func (c *Controller) OpenInfoModal() {
	if !c.hasInfo {
		return
	}
	c.doc.Update(func() {
		c.infoModal.SetStyle("display", displayOpen)
	})
}

// CloseInfoModal hides the info modal.
func (c *Controller) CloseInfoModal() {
	if !c.hasInfo {
		return
	}
	c.doc.Update(func() {
		c.infoModal.SetStyle("display", displayClosed)
	})
}

// VideoOpen reports whether the video modal is visible.
func (c *Controller) VideoOpen() bool {
	return c.isOpen(c.hasVideo, c.videoModal)
}

// InfoOpen reports whether the info modal is visible.
func (c *Controller) InfoOpen() bool {
	return c.isOpen(c.hasInfo, c.infoModal)
}

// VideoSource returns the current frame source.
func (c *Controller) VideoSource() string {
	if !c.hasVideo {
		return ""
	}
	var src string
	c.doc.Update(func() {
		src = c.videoFrame.AttrOr("src", "")
	})
	return src
}

func (c *Controller) isOpen(present bool, el dom.Element) bool {
	if !present {
		return false
	}
	var open bool
	c.doc.Update(func() {
		open = el.Style("display") == displayOpen
	})
	return open
}
