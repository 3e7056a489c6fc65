package catalog

import "github.com/custodia-labs/surveyor-cli/internal/core/domain"

// sections is the raw questionnaire. Order matters: sections appear in the
// form in this order, questions in catalogue order within each section.
var sections = []domain.Section{
	{
		Title:       "Respondent Information for Survey Tracking",
		Description: "Please provide your professional information.",
		Questions: []domain.Question{
			line("Please enter the name of your institution"),
			line("What is your current job title or position within your institution?"),
		},
	},
	{
		Title:       "Policy and Regulatory Assessment",
		Description: "Evaluate alignment of your retail payments infrastructure with international compliance, financial integrity, and governance standards (FATF, BIS CPMI, ISO 20022).",
		Questions: []domain.Question{
			scale("On a scale of 1 (Not Compliant) to 5 (Fully Compliant), how well does your retail payment infrastructure comply with FATF AML/CFT recommendations?", "Not Compliant", "Fully Compliant"),
			scale("On a scale of 1 (Not Compatible) to 5 (Fully Compatible), how capable is your retail payment system of adapting to evolving cross-border interoperability requirements?", "Not Compatible", "Fully Compatible"),
			paragraph("What are the main challenges your institution faces in aligning regulatory rulebooks with those of other countries?"),
			scale("On a scale of 1 (Low Transparency) to 5 (Full Accountability), how would you rate your policy oversight and transparency mechanisms in line with BIS Principles?", "Low Transparency", "Full Accountability"),
			paragraph("Please describe any existing safeguards or gaps in accountability and oversight within your institution."),
			paragraph("Describe any regulatory sandboxes or pilot programs your institution has participated in for cross-border payment innovations."),
			scale("How appropriate is a retail cross-border platform for your jurisdiction, considering cost, scalability, and governance?", "Very Low", "Very High"),
			scale("How operationally viable is a single common platform or hub-and-spoke model that handles both domestic and cross-border payments without reducing local efficiency?", "Very Low", "Very High"),
			scale("How well-developed is your framework for proportionate regulation of FinTechs offering payment services under cross-border arrangements?", "Very Low", "Very High"),
			scale("To what extent does your jurisdiction maintain a level playing field for infrastructure access, especially between traditional banks and FinTechs?", "Very Low", "Very High"),
			scale("How administratively burdensome would it be for your institution to set and enforce differentiated holding/transaction limits for residents vs. non-residents?", "Very Low", "Very High"),
			scale("How developed is your national approach to Digital Public Infrastructure (i.e. ID systems, data exchange, real-time payments) supporting retail payment transformation?", "Very Low", "Very High"),
			scale("How effective is your regulatory structure in accommodating new entrants and private-sector innovations in retail payment system design?", "Very Low", "Very High"),
			scale("How ready is your jurisdiction to support cross-border data exchange via APIs and standardized messaging protocols for retail payment systems?", "Very Low", "Very High"),
			scale("How adequately does the legal/regulatory framework permit PSPs or the central bank to exchange transaction-related data across borders?", "Very Low", "Very High"),
		},
	},
	{
		Title:       "Monetary Policy",
		Description: "Evaluate how interlinking regional retail payment systems may affect key monetary policy channels, including transmission effectiveness, currency stability, and reliance on the US dollar.",
		Questions: []domain.Question{
			unlabelledScale("To what extent could interlinking regional retail payment systems impact the effectiveness of monetary policy transmission in your country? (1 = No Impact, 5 = Major Impact)"),
			paragraph("Please explain your rating regarding the impact on monetary policy transmission effectiveness."),
			unlabelledScale("To what extent could interlinking regional retail payment systems reduce your country's dependency on the US dollar for transactions? (1 = No Impact, 5 = Major Reduction)"),
			paragraph("Please provide context or examples of how interlinking regional retail payment systems might alter your country's reliance on the US dollar."),
			unlabelledScale("How might interlinking regional retail payment systems affect the stability of your domestic currency? (1 = No Impact, 5 = Major Impact)"),
			paragraph("Please comment on any expected changes in foreign exchange market volatility or policy tools that may be needed as a result of regional retail payment system interlinking."),
			unlabelledScale("To what extent do you anticipate cross-border retail payments will influence domestic interest rate policy? (1 = No Influence, 5 = Major Influence)"),
			paragraph("Please describe any anticipated challenges in coordinating monetary policy with other countries due to increased cross-border retail payment flows."),
		},
	},
	{
		Title:       "Financial Stability",
		Description: "This section assesses how integrating regional retail payment systems may affect the stability of your country's financial sector, including banks, capital markets, and payment system integrity.",
		Questions: []domain.Question{
			unlabelledScale("On a scale of 1 (Low Impact) to 5 (High Impact), how do you assess the impact of regional retail payment system integration on the stability of your domestic banking sector?"),
			paragraph("Please explain your assessment regarding the impact on banking sector stability. Consider factors such as liquidity, credit risk, and operational resilience."),
			unlabelledScale("On a scale of 1 (Low Impact) to 5 (High Impact), how do you assess the impact of regional retail payment system integration on the development of domestic capital markets?"),
			paragraph("Describe how interlinking regional retail payment systems may support or hinder the depth and growth of your domestic capital markets."),
			unlabelledScale("On a scale of 1 (Low Impact) to 5 (High Impact), how do you assess the impact of regional retail payment system integration on the integrity and security of your domestic payment system?"),
			paragraph("Please comment on any cybersecurity, fraud, or trust-related concerns that may arise from regional retail payment system integration."),
			unlabelledScale("How prepared is your institution to participate in a Distributed Ledger Technology (DLT)-based payment or securities settlement network, especially in terms of infrastructure, policy, and governance?"),
			unlabelledScale("To what extent does your institution believe that digital technologies like blockchain can reduce trade logistics, regulatory, and administrative costs?"),
			unlabelledScale("How concerned is your institution about risks posed by digital transformation, such as market concentration or privacy erosion?"),
			unlabelledScale("To what extent does your institution see potential in DLT for compliance cost reduction (KYC utilities, digital IDs, AML/CFT alignment)?"),
			unlabelledScale("How disruptive would a shift to DLT-based payment networks (e.g., hub-and-spoke, CBDCs) be to your current operational model?"),
			unlabelledScale("How beneficial would a blockchain-integrated Supply Chain Finance (SCF) platform be in improving working capital access for regional SMEs?"),
			unlabelledScale("How likely is your institution to support a multi-country Caribbean platform for payments, SCF, and trade settlement using DLT?"),
		},
	},
	{
		Title:       "Technical Readiness",
		Description: "This section evaluates your institution's preparedness for technical interoperability and integration with a regional retail payment system. Please answer each question as accurately as possible.",
		Questions: []domain.Question{
			paragraph("Please describe your institution's progress or any gaps in implementing ISO 20022 compliance."),
			paragraph("Please explain the current state of API deployment at your institution, including any challenges faced."),
			paragraph("Please comment on any scalability testing or stress test outcomes for your payment system."),
			scale("How would you rate your institution's readiness to support real-time cross-border retail payment processing? (1 = Not Ready, 5 = Fully Ready)", "Not Ready", "Fully Ready"),
			paragraph("Please describe any interoperability testing performed with foreign payment systems."),
			scale("How advanced is your jurisdiction in enabling a Request to Pay (RtP) functionality across banks, e-wallets, and credit union platforms?", "Very Low", "Very High"),
			scale("How interoperable are the RtP workflows across different payment service providers, including ability to route notifications, links, and confirmations securely?", "Very Low", "Very High"),
			scale("How viable is upgrading the existing retail payment infrastructure as opposed to creating a separate IPS for cross-border instant payments?", "Very Low", "Very High"),
			scale("How aligned are key stakeholders (e.g. central bank, Bankers Association, government) in deciding on a public vs. private sector-run IPS model?", "Very Low", "Very High"),
			scale("To what extent would a centralized RtP and an API-based Instant Fund Transfer (IFT) framework improve financial inclusion for underserved populations?", "Very Low", "Very High"),
			scale("How feasible is leveraging domestic Fast Payment System (FPS) infrastructure for processing cross-border payments, considering API interfaces, scheme rules, and messaging formats?", "Very Low", "Very High"),
			scale("How well-equipped is your system to integrate with hub-and-spoke or common platform models using standardized gateways?", "Very Low", "Very High"),
			scale("To what extent does the current architecture support programmability and synchronous communication for smart contract execution in PvP or DVP transactions?", "Very Low", "Very High"),
		},
	},
	{
		Title:       "Cross-Border Readiness",
		Description: "This section assesses your institution's ability to integrate with regional cross-border retail payment systems. Please answer each question based on your current capabilities and challenges.",
		Questions: []domain.Question{
			scale("How compatible is your institution with a regional governance framework for cross-border payments? (1 = Not Ready, 5 = Fully Ready)", "Not Ready", "Fully Ready"),
			paragraph("Please explain any legal or institutional challenges that affect your alignment with regional governance frameworks."),
			scale("How compatible is your institution with a common regional regulatory compliance rulebook? (1 = Not Ready, 5 = Fully Ready)", "Not Ready", "Fully Ready"),
			paragraph("Please describe any friction points or obstacles in aligning your compliance frameworks with those of other countries."),
			scale("How ready is your institution to settle cross-border retail transactions in central bank money? (1 = Not Ready, 5 = Fully Ready)", "Not Ready", "Fully Ready"),
			paragraph("Please comment on any messaging standards, liquidity bridges, or technical enablers required for cross-border retail payment settlement."),
			scale("How compatible are your current anti-money laundering (AML) and know-your-customer (KYC) processes with those of other regional institutions? (1 = Not Compatible, 5 = Fully Compatible)", "Not Compatible", "Fully Compatible"),
			paragraph("Describe any technical or operational barriers to achieving real-time settlement for cross-border retail payments."),
			scale("Does your country have a National Payment Switch? If yes, to what extent does it support real-time interoperability between bank accounts, e-wallets, and credit unions?", "Very Low", "Very High"),
		},
	},
	{
		Title:       "Risk Assessment",
		Description: "This section uses ISO-aligned definitions to evaluate your institution's exposure to key financial and operational risks related to regional retail payment system implementation and securities settlement infrastructure.",
		Questions: []domain.Question{
			scale("How would you assess your institution's operational risk (e.g., inadequate or failed internal processes, people, or systems)? (1 = Negligible, 5 = Critical)", "Negligible", "Critical"),
			paragraph("Please explain your operational risk assessment, including any recent incidents or mitigation strategies."),
			scale("How would you assess your institution's foreign exchange (FX) risk (e.g., volatility in currency value impacting cross-border settlements)? (1 = Low Exposure, 5 = High Exposure)", "Low Exposure", "High Exposure"),
			paragraph("Please explain your FX risk exposure assessment, including any hedging strategies."),
			scale("How would you assess your institution's credit risk (e.g., risk of counterparty default across the settlement chain)? (1 = Insignificant, 5 = Severe)", "Insignificant", "Severe"),
			paragraph("Please explain your credit risk concerns, including any recent experiences or controls in place."),
			scale("How would you assess your institution's liquidity risk under stress scenarios (e.g., inability to fund obligations in CBDC and fiat simultaneously)? (1 = Very Liquid, 5 = Highly Illiquid)", "Very Liquid", "Highly Illiquid"),
			paragraph("Please describe any potential liquidity shortfalls or strategies your institution uses to mitigate liquidity risk."),
			scale("How would you assess the cyber risk exposure of your institution when participating in regional cross-border payment systems? (1 = Low, 5 = High)", "Low", "High"),
			paragraph("Please describe any cross-border fraud detection or prevention mechanisms currently in place."),
		},
	},
	{
		Title:       "Implementation Readiness",
		Description: "This section evaluates your institution's overall readiness to roll out a regional retail payment system. Please provide honest and detailed responses.",
		Questions: []domain.Question{
			scale("How would you rate your institution's readiness to implement a regional retail payment system? (1 = Not Ready, 5 = Fully Ready)", "Not Ready", "Fully Ready"),
			paragraph("Please explain your implementation readiness rating, including any key enablers or barriers."),
			scale("How would you rate your institution's capacity to allocate resources (staff, budget, technology) for cross-border payment system implementation? (1 = Not Ready, 5 = Fully Ready)", "Not Ready", "Fully Ready"),
			paragraph("Describe any change management strategies planned for the transition to a regional cross-border payment system."),
			scale("How effective is your institution's strategy to provide low-cost digital payment acceptance solutions (QR codes, POS, proxy identifiers) to MSMEs and micro-merchants?", "Very Low", "Very High"),
		},
	},
	{
		Title:       "Regional Integration",
		Description: "Assess regional integration aspects.",
		Questions: []domain.Question{
			paragraph("Describe key enablers or barriers to regional integration"),
			scale("How effective is current collaboration with regional partners on retail payment system integration projects? (1 = Not Effective, 5 = Highly Effective)", "Not Effective", "Highly Effective"),
			paragraph("Please identify any key technical standards or protocols that would facilitate smoother regional retail payment system integration."),
			paragraph("How exposed is your jurisdiction to correspondent banking de-risking, particularly among smaller institutions and high-risk sectors?"),
			paragraph("How effective are your current strategies to safeguard access to cross-border payment corridors without relying solely on global correspondent banks?"),
			paragraph("How successful has your jurisdiction been in enforcing proportionate financial integrity standards without excluding vulnerable customers?"),
			paragraph("How aligned are national efforts with the G20 cross-border payments roadmap?"),
			paragraph("How ready is your jurisdiction to participate in regional proof-of-concept pilots? such as multilateral arrangements (e.g. Africa-Caribbean corridor)?"),
		},
	},
	{
		Title:       "Cost-Benefit Analysis",
		Description: "Assessment of the costs and benefits of participating in a regional retail payment system.",
		Questions: []domain.Question{
			scale("How would you rate the cost-benefit ratio of participating in a regional retail payment system? (1 = Low Benefit, 5 = High Benefit)", "Low Benefit", "High Benefit"),
			paragraph("Please justify your cost-benefit assessment, providing supporting rationale and examples where possible."),
			scale("How do you assess the expected operational cost savings from participating in a regional cross-border retail payment system? (1 = No Savings, 5 = Significant Savings)", "No Savings", "Significant Savings"),
			paragraph("Please provide examples of anticipated efficiency gains or cost reductions from cross-border retail payment integration."),
		},
	},
	{
		Title:       "Governance Framework",
		Description: "This section evaluates your institution's internal oversight structures and governance readiness for implementing regional retail payment systems.",
		Questions: []domain.Question{
			scale("How clear are the roles and responsibilities for cross-border retail payment oversight within your institution? (1 = Not Clear, 5 = Very Clear)", "Not Clear", "Very Clear"),
			paragraph("Describe any governance structures established for managing cross-border retail payment risks."),
		},
	},
	{
		Title:       "Stakeholder Impact",
		Description: "This section assesses the expected impact of a regional retail payment system on your institution and other stakeholders, including the public.",
		Questions: []domain.Question{
			scale("How significant do you expect the impact of a regional retail payment system to be on your institution and stakeholders? (1 = Low Impact, 5 = High Impact)", "Low Impact", "High Impact"),
			paragraph("Please explain how stakeholders will be affected and what measures will be taken to mitigate any risks."),
			scale("How do you expect cross-border retail payment integration to affect your customers' experience? (1 = No Change, 5 = Major Improvement)", "No Change", "Major Improvement"),
			paragraph("Please describe any stakeholder engagement or communication strategies planned for the rollout of cross-border retail payment services."),
		},
	},
}
