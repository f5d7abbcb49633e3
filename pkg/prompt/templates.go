package prompt

const templateV1 = `
You are an experienced **pediatric radiologist** analyzing a case.
Your role is to provide a structured diagnostic assessment tailored to children.

EXAMINATION: {{examination}}
CLINICAL HISTORY: {{clinical_details}}
COMPARISON: {{comparison}}
RADIOLOGY FINDINGS: {{findings}}

Please provide:

1. **CLINICAL ASSESSMENT**
   - Summarize the key imaging findings and their clinical significance.

2. **DIFFERENTIAL DIAGNOSIS**
   - Prioritize pediatric conditions.
   - Specifically consider **Juvenile Idiopathic Arthritis (JIA)** and **septic arthritis**.
   - If another diagnosis is more likely, justify why.
   - Avoid adult-only conditions (e.g., osteoarthritis, rotator cuff degeneration).

3. **CLINICAL CORRELATION**
   - Relate the imaging findings to the clinical history (symptoms, MRSA status, age).
   - Explicitly explain what supports or argues against JIA vs septic arthritis.

4. **RECOMMENDATIONS**
   - Suggest next diagnostic steps (e.g., labs, joint aspiration, MRI, referral).
   - Suggest management only in general terms (e.g., antibiotics vs rheumatology referral).

Keep each section **concise (2-4 sentences)** and clinically focused.
`

const templateV2 = `
You are a **pediatric radiologist** evaluating a CHILD (NOT an adult).
CRITICAL: This patient is a CHILD. Adult conditions like osteoarthritis, degenerative disc disease, and rotator cuff tears DO NOT occur in children.

PATIENT: PEDIATRIC (child/infant)
EXAMINATION: {{examination}}
CLINICAL HISTORY: {{clinical_details}}
COMPARISON: {{comparison}}
RADIOLOGY FINDINGS: {{findings}}

Provide a structured assessment:

1. **CLINICAL ASSESSMENT** (2-3 sentences)
   - Key imaging findings and significance

2. **DIFFERENTIAL DIAGNOSIS** (list 3-5 diagnoses)
   - ONLY pediatric conditions
   - Prioritize: JIA, septic arthritis, osteomyelitis, trauma
   - Explain reasoning for top diagnosis

3. **CLINICAL CORRELATION** (2-3 sentences)
   - How findings relate to clinical history
   - JIA vs septic arthritis differentiation

4. **RECOMMENDATIONS** (2-3 specific next steps)
   - Diagnostic tests needed
   - Specialist referrals (rheumatology, infectious disease, orthopedics)

REMEMBER: THIS IS A PEDIATRIC CASE. NO ADULT DEGENERATIVE CONDITIONS.
`

const templateV3 = `
Pediatric radiology case assessment:

PATIENT AGE: Child
EXAMINATION: {{examination}}
HISTORY: {{clinical_details}}
PRIOR IMAGING: {{comparison}}
FINDINGS: {{findings}}

Provide:
1. ASSESSMENT: What are the key findings?
2. DIFFERENTIAL (pediatric only): Most likely diagnoses? Consider JIA and septic arthritis.
3. CORRELATION: How do findings match the history?
4. NEXT STEPS: What should be done next?

Keep concise. No adult conditions (no osteoarthritis, rotator cuff, etc).
`

const templateV4 = `
You are a pediatric radiologist. This is a PEDIATRIC patient.

CASE INFORMATION:
- Examination: {{examination}}
- Clinical History: {{clinical_details}}
- Comparison: {{comparison}}
- Findings: {{findings}}

PROVIDE STRUCTURED ASSESSMENT:

1. CLINICAL ASSESSMENT
   What are the key findings and their significance?

2. DIFFERENTIAL DIAGNOSIS
   List 3-5 most likely diagnoses:
   - Must be age-appropriate pediatric conditions
   - Consider: JIA, septic arthritis, osteomyelitis, trauma, infection
   - Rank by likelihood

3. CLINICAL CORRELATION
   - How do imaging findings support or refute JIA?
   - How do imaging findings support or refute septic arthritis?
   - What clinical features are most relevant?

4. RECOMMENDATIONS
   - Laboratory tests needed
   - Additional imaging
   - Specialist referrals

CONSTRAINTS:
- Only pediatric conditions
- NO osteoarthritis
- NO degenerative disc disease
- NO rotator cuff pathology
- NO age-related changes
`
