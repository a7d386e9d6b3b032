package main

// sampleSources are written to data/ by Init so the CLI and server have
// something to list on a fresh checkout.
var sampleSources = map[string]string{
	"news.yaml": `kind: news
items:
  - id: court-watch-2025-q1
    title: Court Watch Volunteers Observe 400 Hearings
    body: Our first quarterly court watch report covers bail hearings across the county.
    category: criminal-justice
    tags: [courts, volunteers, bail]
    date: 2025-04-02
    popularity: 84
    author: Research Team
  - id: statement-bail-reform
    title: Statement on the Bail Reform Vote
    body: We welcome the council's decision and call for full implementation.
    category: press-release
    tags: [bail, policy]
    date: 2025-03-18
    popularity: 91
  - id: housing-first-pilot
    title: Housing First Pilot Enters Second Year
    body: Partners report stable housing for most participants after twelve months.
    category: housing
    tags: [housing, partners]
    date: 2025-02-27
    popularity: 63
    author: Programs
  - id: annual-report-2024
    title: Annual Report 2024
    body: A look back at a year of advocacy, research and community organizing.
    category: press-release
    date: 2025-01-15
    popularity: 47
`,
	"partners.yaml": `kind: partner
items:
  - id: justice-legal-aid
    title: Justice Legal Aid
    body: Free legal representation for people facing eviction or criminal charges.
    category: legal-aid
    tags: [legal, eviction]
  - id: home-first
    title: Home First Collaborative
    body: Permanent supportive housing for people leaving incarceration.
    category: housing
    tags: [housing, reentry]
  - id: advocates-united
    title: Advocates United
    body: A coalition of public defenders and community advocates.
    category: legal-aid
  - id: fresh-start-jobs
    title: Fresh Start Jobs
    body: Employment training and placement for returning citizens.
    category: employment
    tags: [jobs, reentry]
`,
}
