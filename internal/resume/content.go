package resume

// Role is one work-experience entry
type Role struct {
	Title      string
	Company    string
	Tenure     string
	Highlights []string
}

// Skill is one labelled line of the skills section
type Skill struct {
	Label string
	Value string
}

const (
	fullName = "NIKHIL KUMAR BANDI"
	headline = "DevOps/SRE/Platform Engineer"
	email    = "bandinikhilgoud4545@gmail.com"
	location = "Available Globally"
	status   = "Available for Freelance & Full-time Opportunities"

	summary = "IT Professional with 3+ years of experience in Software Development, skilled at operating in a wide " +
		"range of platforms including DevOps/SRE/Platform engineering, AWS, GCP, and Linux environments. " +
		"Passionate about implementing modern DevOps practices, optimizing cloud infrastructure, and ensuring " +
		"high availability and performance of critical systems."

	degree     = "Bachelor of Science in Computer Science"
	university = "Osmania University"
)

var experience = []Role{
	{
		Title:   "Platform Engineer",
		Company: "SIDGS DIGISOL Pvt Ltd",
		Tenure:  "Current Position | Full-time",
		Highlights: []string{
			"Leading DevOps initiatives and platform engineering for enterprise-scale applications",
			"Utilized archetypes to establish structured development environments with dependencies and automation",
			"Managed build and release processes, including dependency management and deployment strategies",
			"Developed Helm charts to package and deploy applications on Kubernetes efficiently",
			"Ensured zero-downtime deployments and efficiently troubleshot issues",
			"Orchestrated CI/CD pipelines using GitLab for automated builds and deployments",
		},
	},
	{
		Title:   "System Administrator",
		Company: "Anything 4 Home Ltd",
		Tenure:  "Previous Role | Full-time",
		Highlights: []string{
			"Managed comprehensive system administration and monitoring infrastructure for e-commerce platform",
			"Specialized in monitoring and troubleshooting, focusing on tracing, logging, and debugging microservices",
			"Monitored and managed CD deployments using ArgoCD for seamless rollouts and quick failure recovery",
			"Implemented real-time monitoring and alerting using Prometheus and Grafana",
			"Diagnosed and resolved microservices issues leveraging CloudWatch and centralized logging tools",
		},
	},
}

var skills = []Skill{
	{Label: "Cloud Platforms", Value: "Amazon Web Services (AWS), Google Cloud Platform (GCP)"},
	{Label: "Containerization", Value: "Docker, Kubernetes, EKS, Helm"},
	{Label: "CI/CD Tools", Value: "GitLab CI/CD, Jenkins, Maven"},
	{Label: "Monitoring", Value: "CloudWatch, Prometheus, Grafana, Dynatrace"},
	{Label: "Infrastructure as Code", Value: "Terraform"},
	{Label: "Security", Value: "TLS/mTLS, Trivy, Co-sign"},
	{Label: "Operating Systems", Value: "Linux, Windows"},
}

var certifications = []string{
	"Google Cloud Platform Associate Cloud Engineer",
}
