package model

import "time"

// Author is the byline attached to a blog post.
type Author struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}

// BlogPost is a published article. HTML is rendered from the markdown body
// at load time and only returned on the detail endpoint.
type BlogPost struct {
	ID       string    `json:"id" yaml:"id"`
	Slug     string    `json:"slug" yaml:"slug"`
	Title    string    `json:"title" yaml:"title"`
	Excerpt  string    `json:"excerpt" yaml:"excerpt"`
	Category string    `json:"category" yaml:"category"`
	Date     time.Time `json:"date" yaml:"date"`
	ReadTime string    `json:"readTime" yaml:"readTime"`
	Image    string    `json:"image" yaml:"image"`
	Author   Author    `json:"author" yaml:"author"`
	HTML     string    `json:"html,omitempty" yaml:"-"`
}

// Summary returns a copy of the post without its rendered body.
func (p BlogPost) Summary() BlogPost {
	p.HTML = ""
	return p
}

// PortfolioProject is a single finished project in the portfolio gallery.
type PortfolioProject struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
}

// PortfolioCategory groups portfolio projects by room type.
type PortfolioCategory struct {
	Category string             `json:"category" yaml:"category"`
	Projects []PortfolioProject `json:"projects" yaml:"projects"`
}
