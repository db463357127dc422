// seehuhn.de/go/resume - generate one-page résumés as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package resume

import (
	"seehuhn.de/go/resume/graphics"
)

var (
	black     = graphics.Black
	headline  = graphics.Gray(0.4)
	location  = graphics.Gray(0.2)
	accent    = graphics.RGB{0.23, 0.51, 0.96}
	ruleColor = graphics.Gray(0.8)
)

// DefaultConfig returns the configuration for the built-in résumé.
func DefaultConfig() *Config {
	text := func(size, x float64, color *graphics.RGB, content string, advance float64) Block {
		return Block{
			Text:    &Text{Size: size, X: x, Color: color, Content: content},
			Advance: advance,
		}
	}
	rule := Block{Rule: true, Advance: 25}
	color := func(c graphics.RGB) *graphics.RGB { return &c }

	return &Config{
		Version:      "1.7",
		Font:         "Helvetica",
		FontResource: "F1",
		PageWidth:    595,
		PageHeight:   842,
		Top:          800,
		Rule: RuleStyle{
			X0:        50,
			X1:        545,
			LineWidth: 1,
			Color:     ruleColor,
		},
		Blocks: []Block{
			text(24, 50, color(black), "Tanmay Thakur", 25),
			text(14, 50, color(headline), "Backend & Infrastructure Engineer", 20),
			text(10, 50, color(location), "Tokyo, Japan", 15),
			{
				Links: &Links{
					Size:  10,
					Color: color(accent),
					Above: 10,
					Below: 2,
					Items: []Link{
						{X: 50, Width: 160, Label: "tanmaythakur.dev@gmail.com", URI: "mailto:tanmaythakur.dev@gmail.com", Order: 3},
						{X: 220, Width: 70, Label: "LinkedIn", URI: "https://www.linkedin.com/in/tanmay-thakur-6bb5a9154/", Order: 1},
						{X: 300, Width: 50, Label: "GitHub", URI: "https://github.com/lordtt13", Order: 2},
					},
				},
				Advance: 15,
			},
			rule,

			text(12, 50, color(accent), "SKILLS", 20),
			text(10, 50, color(black), "Backend: Microservices, REST APIs, Spring Boot, Django, Go, Ruby on Rails", 15),
			text(10, 50, nil, "Cloud & DevOps: AWS (Lambda, ECS, Glue), Docker, Kubernetes, Terraform", 15),
			text(10, 50, nil, "MLOps & Data: ETL pipelines, Webhooks, OpenAI integrations", 15),
			rule,

			text(13, 50, color(accent), "EXPERIENCE", 20),
			text(12, 50, color(black), "Sustainable Lab Inc. (Nov 2024 - Present)", 15),
			text(10, 60, nil, "- Developing TERRAST for Enterprise ESG platform.", 15),
			text(10, 60, nil, "- Designing scalable backend services.", 25),
			text(12, 50, nil, "Goalist India Pvt. Ltd. (Feb 2022 - Oct 2024)", 15),
			text(10, 60, nil, "- Built movie-work.jp job platform (Java/Spring Boot).", 15),
			text(10, 60, nil, "- Deployed invoice system on AWS/K8s.", 15),
			text(10, 60, nil, "- Developed Go microservice using TDD.", 15),
			text(10, 60, nil, "- Engineered Django backend for b-align.dental.", 15),
			text(10, 60, nil, "- Modernized booking infrastructure for CRIE.", 15),
			text(10, 60, nil, "- Built Scrapy crawlers & webhook ETL pipelines.", 25),
			rule,

			text(13, 50, color(accent), "EDUCATION", 20),
			text(12, 50, color(black), "Vellore Institute of Technology (2017 - 2021)", 15),
			text(10, 50, nil, "B.Tech - Electrical and Electronics Engineering", 0),
		},
	}
}
