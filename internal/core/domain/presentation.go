package domain

// Presentation is the slide state machine for a topic's steps.
// Slide 0 is the title slide; slides 1..N show one step each.
type Presentation struct {
	topic  *Topic
	slide  int
	closed bool
}

// NewPresentation starts a presentation at the title slide.
func NewPresentation(topic *Topic) *Presentation {
	return &Presentation{topic: topic}
}

// Topic returns the topic being presented.
func (p *Presentation) Topic() *Topic {
	return p.topic
}

// Slide returns the current slide index.
func (p *Presentation) Slide() int {
	return p.slide
}

// LastSlide returns N, the index of the final slide.
func (p *Presentation) LastSlide() int {
	if p.topic == nil {
		return 0
	}
	return len(p.topic.Steps)
}

// Total returns N+1, the number of slides including the title slide.
func (p *Presentation) Total() int {
	return p.LastSlide() + 1
}

// Next advances one slide, clamped to the last slide.
func (p *Presentation) Next() {
	if p.closed {
		return
	}
	if p.slide < p.LastSlide() {
		p.slide++
	}
}

// Prev goes back one slide, clamped to the title slide.
func (p *Presentation) Prev() {
	if p.closed {
		return
	}
	if p.slide > 0 {
		p.slide--
	}
}

// Close ends the presentation. It is terminal.
func (p *Presentation) Close() {
	p.closed = true
}

// Closed reports whether Close has been called.
func (p *Presentation) Closed() bool {
	return p.closed
}

// IsTitleSlide reports whether the title slide is showing.
func (p *Presentation) IsTitleSlide() bool {
	return p.slide == 0
}

// Step returns the step text for the current slide, or "" on the title slide.
func (p *Presentation) Step() string {
	if p.slide == 0 || p.topic == nil {
		return ""
	}
	return p.topic.Steps[p.slide-1]
}

// Progress returns (slide+1)/(N+1) as a percentage.
func (p *Presentation) Progress() float64 {
	return float64(p.slide+1) / float64(p.Total()) * 100
}
