package section

import "strings"

type AboutData struct {
	Title      string
	Paragraphs []string
	Image      string
}

func RenderAbout(in Input, _ Config) *Block {
	s := in.salon()

	paragraphs := s.Paragraphs()
	if len(paragraphs) == 0 && !in.Theme.Media.HasAbout {
		return nil
	}

	if len(paragraphs) == 0 {
		if subtitle := strings.TrimSpace(s.HeroSubtitle); subtitle != "" {
			paragraphs = []string{subtitle}
		}
	}

	title := "About Us"
	if name := strings.TrimSpace(s.Name); name != "" {
		title = "About " + name
	}

	return &Block{
		ID:    About,
		Class: "about",
		Data: AboutData{
			Title:      title,
			Paragraphs: paragraphs,
			Image:      in.Theme.Media.About,
		},
	}
}
