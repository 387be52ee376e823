// ABOUTME: Built-in fallback knowledge served when the institute website is unreachable
// ABOUTME: Covers the sections users ask about most: home, programs, admissions

package knowledge

// Fallback returns the static knowledge base used before the first
// successful scrape and whenever scraping leaves us with nothing.
func Fallback() map[string]string {
	return map[string]string{
		"home": `MPTI Technical Institute - Leading Technical Education in Ghana

MPTI Technical Institute is a premier institution offering technical and vocational education programs.
Programs: Technical Education, Engineering Technology, Professional Certifications, TACT Program
Website: https://www.mptigh.com/
Contact: Visit our website for current contact information and application details.`,

		"programs": `MPTI Programs and Courses

Technical Education Programs:
- Engineering Technology
- Information Technology
- Business and Management
- Professional Certifications
- TACT (Technical Advancement and Certification Training)

For detailed program information, admission requirements, and applications, visit https://www.mptigh.com/`,

		"admissions": `MPTI Admissions Information

Admission Requirements:
- Completed application form
- Academic transcripts
- Relevant certificates

Application Process:
1. Visit https://www.mptigh.com/ for current application forms
2. Submit required documents
3. Await admission decision

For specific admission requirements and deadlines, please visit our website or contact the admissions office.`,
	}
}
