package site

import (
	"encoding/xml"
	"path/filepath"
	"strings"
	"time"

	"github.com/quillmark/quill/pkg/urlpath"
)

// feedItemLimit caps how many posts the feed carries.
const feedItemLimit = 20

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate,omitempty"`
	Description string `xml:"description,omitempty"`
}

// writeFeed emits feed.xml with the newest posts. Posts arrive already
// sorted newest first.
func (b *Builder) writeFeed(posts []*Page) error {
	if len(posts) > feedItemLimit {
		posts = posts[:feedItemLimit]
	}

	base := strings.TrimSuffix(b.site.BaseURL, "/")
	channel := rssChannel{
		Title:       b.site.Title,
		Link:        base + urlpath.Join(b.site.BasePath, "/"),
		Description: b.site.Description,
	}

	for _, post := range posts {
		link := base + post.Href
		item := rssItem{
			Title:       post.Title,
			Link:        link,
			GUID:        link,
			Description: post.Description,
		}
		if !post.Date.IsZero() {
			item.PubDate = post.Date.Format(time.RFC1123Z)
		}
		channel.Items = append(channel.Items, item)
	}

	data, err := xml.MarshalIndent(rssFeed{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return err
	}

	out := append([]byte(xml.Header), data...)
	return write(filepath.Join(b.out, "feed.xml"), out)
}
